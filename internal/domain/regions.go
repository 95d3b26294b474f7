package domain

import "strings"

// Region is one Brazilian federative unit. Coordinates point at the
// state capital in [lon, lat] order.
type Region struct {
	Code        string
	Name        string
	Capital     string
	Coordinates []float64
}

// DefaultCoordinates is the fallback when no region or country entry
// matches: Brasília.
var DefaultCoordinates = []float64{-47.8825, -15.7942}

// BrazilRegions lists every federative unit in code order. A national
// submission fans out into one record per entry.
var BrazilRegions = []Region{
	{Code: "AC", Name: "Acre", Capital: "Rio Branco", Coordinates: []float64{-67.8243, -9.9754}},
	{Code: "AL", Name: "Alagoas", Capital: "Maceió", Coordinates: []float64{-35.7353, -9.6658}},
	{Code: "AP", Name: "Amapá", Capital: "Macapá", Coordinates: []float64{-51.0694, 0.0349}},
	{Code: "AM", Name: "Amazonas", Capital: "Manaus", Coordinates: []float64{-60.0217, -3.1190}},
	{Code: "BA", Name: "Bahia", Capital: "Salvador", Coordinates: []float64{-38.5016, -12.9777}},
	{Code: "CE", Name: "Ceará", Capital: "Fortaleza", Coordinates: []float64{-38.5434, -3.7327}},
	{Code: "DF", Name: "Distrito Federal", Capital: "Brasília", Coordinates: []float64{-47.8825, -15.7942}},
	{Code: "ES", Name: "Espírito Santo", Capital: "Vitória", Coordinates: []float64{-40.3128, -20.3155}},
	{Code: "GO", Name: "Goiás", Capital: "Goiânia", Coordinates: []float64{-49.2539, -16.6869}},
	{Code: "MA", Name: "Maranhão", Capital: "São Luís", Coordinates: []float64{-44.3028, -2.5297}},
	{Code: "MT", Name: "Mato Grosso", Capital: "Cuiabá", Coordinates: []float64{-56.0974, -15.6014}},
	{Code: "MS", Name: "Mato Grosso do Sul", Capital: "Campo Grande", Coordinates: []float64{-54.6201, -20.4697}},
	{Code: "MG", Name: "Minas Gerais", Capital: "Belo Horizonte", Coordinates: []float64{-43.9378, -19.9208}},
	{Code: "PA", Name: "Pará", Capital: "Belém", Coordinates: []float64{-48.4902, -1.4558}},
	{Code: "PB", Name: "Paraíba", Capital: "João Pessoa", Coordinates: []float64{-34.8631, -7.1195}},
	{Code: "PR", Name: "Paraná", Capital: "Curitiba", Coordinates: []float64{-49.2731, -25.4284}},
	{Code: "PE", Name: "Pernambuco", Capital: "Recife", Coordinates: []float64{-34.8770, -8.0476}},
	{Code: "PI", Name: "Piauí", Capital: "Teresina", Coordinates: []float64{-42.8019, -5.0892}},
	{Code: "RJ", Name: "Rio de Janeiro", Capital: "Rio de Janeiro", Coordinates: []float64{-43.1729, -22.9068}},
	{Code: "RN", Name: "Rio Grande do Norte", Capital: "Natal", Coordinates: []float64{-35.2094, -5.7945}},
	{Code: "RS", Name: "Rio Grande do Sul", Capital: "Porto Alegre", Coordinates: []float64{-51.2177, -30.0346}},
	{Code: "RO", Name: "Rondônia", Capital: "Porto Velho", Coordinates: []float64{-63.9039, -8.7612}},
	{Code: "RR", Name: "Roraima", Capital: "Boa Vista", Coordinates: []float64{-60.6753, 2.8235}},
	{Code: "SC", Name: "Santa Catarina", Capital: "Florianópolis", Coordinates: []float64{-48.5482, -27.5954}},
	{Code: "SP", Name: "São Paulo", Capital: "São Paulo", Coordinates: []float64{-46.6333, -23.5505}},
	{Code: "SE", Name: "Sergipe", Capital: "Aracaju", Coordinates: []float64{-37.0731, -10.9472}},
	{Code: "TO", Name: "Tocantins", Capital: "Palmas", Coordinates: []float64{-48.3603, -10.2491}},
}

// countryCoordinates anchors international submissions to a fixed
// point per country (diaspora hubs).
var countryCoordinates = map[string][]float64{
	"portugal":       {-9.1393, 38.7223},
	"estados unidos": {-80.1918, 25.7617},
	"reino unido":    {-0.1276, 51.5072},
	"irlanda":        {-6.2603, 53.3498},
	"espanha":        {-3.7038, 40.4168},
	"franca":         {2.3522, 48.8566},
	"alemanha":       {13.4050, 52.5200},
	"italia":         {12.4964, 41.9028},
	"suica":          {8.5417, 47.3769},
	"canada":         {-79.3832, 43.6532},
	"japao":          {139.6917, 35.6895},
	"australia":      {151.2093, -33.8688},
}

// LookupRegion matches a federative unit by code or name,
// case-insensitively. Missing entries never fail a create or a
// migration; callers fall back to DefaultCoordinates.
func LookupRegion(s string) (Region, bool) {
	needle := strings.TrimSpace(s)
	for _, r := range BrazilRegions {
		if strings.EqualFold(r.Code, needle) || strings.EqualFold(r.Name, needle) {
			return r, true
		}
	}
	return Region{}, false
}

// CountryCoordinates resolves the fixed anchor for an international
// submission, falling back to DefaultCoordinates.
func CountryCoordinates(country string) []float64 {
	if c, ok := countryCoordinates[strings.ToLower(strings.TrimSpace(country))]; ok {
		return c
	}
	return DefaultCoordinates
}
