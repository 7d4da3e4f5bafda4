package handlers

// countryCodes is the static country -> dialing code table served by
// GET /auth/country-codes.
var countryCodes = map[string]string{
	"United States":  "+1",
	"Canada":         "+1",
	"United Kingdom": "+44",
	"Australia":      "+61",
	"India":          "+91",
	"Nepal":          "+977",
	"China":          "+86",
	"Japan":          "+81",
	"Germany":        "+49",
	"France":         "+33",
	"Italy":          "+39",
	"Spain":          "+34",
	"Mexico":         "+52",
	"Brazil":         "+55",
	"Russia":         "+7",
	"South Korea":    "+82",
	"Netherlands":    "+31",
	"Sweden":         "+46",
	"Norway":         "+47",
	"Denmark":        "+45",
	"Finland":        "+358",
	"Poland":         "+48",
	"Turkey":         "+90",
	"Saudi Arabia":   "+966",
	"UAE":            "+971",
	"Singapore":      "+65",
	"Malaysia":       "+60",
	"Thailand":       "+66",
	"Vietnam":        "+84",
	"Philippines":    "+63",
	"Indonesia":      "+62",
	"Pakistan":       "+92",
	"Bangladesh":     "+880",
	"Sri Lanka":      "+94",
	"South Africa":   "+27",
	"Nigeria":        "+234",
	"Kenya":          "+254",
	"Egypt":          "+20",
}
