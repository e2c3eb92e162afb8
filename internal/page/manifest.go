package page

// ManifestEntry describes one section of the landing page without its markup.
type ManifestEntry struct {
	Index int      `json:"index"`
	Kind  string   `json:"kind"`
	Title string   `json:"title,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Manifest lists the landing page sections in display order.
func Manifest() []ManifestEntry {
	sections := Sections()
	entries := make([]ManifestEntry, 0, len(sections))
	for i, s := range sections {
		entries = append(entries, ManifestEntry{
			Index: i,
			Kind:  string(s.Kind),
			Title: s.Title,
			Items: s.Items,
		})
	}
	return entries
}
