package constant

// Provinces lists the selectable provinces in display order.
var Provinces = []string{
	"Jawa Timur",
	"Jawa Barat",
	"Jawa Tengah",
	"DKI Jakarta",
	"Bali",
	"Sumatera Utara",
	"Sumatera Barat",
	"Kalimantan Timur",
}

var ProvinceCities = map[string][]string{
	"Jawa Timur":       {"Surabaya", "Malang", "Mojokerto", "Pasuruan", "Kediri", "Madiun", "Jember"},
	"Jawa Barat":       {"Bandung", "Bekasi", "Depok", "Bogor", "Cirebon", "Sukabumi", "Tasikmalaya"},
	"Jawa Tengah":      {"Semarang", "Solo", "Yogyakarta", "Magelang", "Purwokerto", "Tegal", "Pekalongan"},
	"DKI Jakarta":      {"Jakarta Pusat", "Jakarta Utara", "Jakarta Selatan", "Jakarta Barat", "Jakarta Timur"},
	"Bali":             {"Denpasar", "Ubud", "Singaraja", "Tabanan", "Gianyar", "Klungkung"},
	"Sumatera Utara":   {"Medan", "Binjai", "Pematangsiantar", "Tanjungbalai", "Sibolga"},
	"Sumatera Barat":   {"Padang", "Bukittinggi", "Payakumbuh", "Solok", "Sawahlunto"},
	"Kalimantan Timur": {"Samarinda", "Balikpapan", "Bontang", "Tarakan", "Sangatta"},
}
