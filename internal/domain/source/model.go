package source

// Source — внешний ресурс (видео, статья), к которому привязываются сниппеты.
// URL глобально уникален: перед созданием источник всегда ищется по URL.
type Source struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	ThumbURL string `json:"thumb_url"`
	Provider string `json:"provider"`
}
