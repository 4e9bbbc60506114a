package converter

// CatalogMetaRedisModel — JSON-представление агрегатов каталога в Redis.
type CatalogMetaRedisModel struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Colors []string `json:"colors"`
}
