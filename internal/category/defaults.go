package category

var defaultCategories = []entry{
	{name: "Docs", extensions: []string{".md", ".txt"}},
	{name: "Docs/PDF", extensions: []string{".pdf"}},
	{name: "Docs/Word", extensions: []string{".doc", ".docx", ".odt", ".rtf"}},
	{name: "Docs/Sheets", extensions: []string{".ods", ".xls", ".xlsm", ".xlsx"}},
	{name: "Docs/Presentations", extensions: []string{".key", ".odp", ".pps", ".ppt", ".pptx"}},
	{name: "Images", extensions: []string{
		".ai", ".bmp", ".gif", ".ico", ".jpeg", ".jpg", ".png",
		".ps", ".psd", ".svg", ".tif", ".tiff", ".webp",
	}},
	{name: "Audio", extensions: []string{
		".aif", ".cda", ".mid", ".mp3", ".mpa", ".ogg",
		".wav", ".wma", ".wpl",
	}},
	{name: "Videos", extensions: []string{
		".3g2", ".3gp", ".avi", ".flv", ".h264", ".m4v", ".mkv",
		".mov", ".mp4", ".mpg", ".rm", ".swf", ".vob", ".wmv",
	}},
	{name: "Archives", extensions: []string{
		".7z", ".arj", ".bz2", ".gz", ".lz4", ".rar",
		".tar", ".xz", ".z", ".zip", ".zstd",
	}},
	{name: "Programs", extensions: []string{".apk", ".bin", ".deb", ".exe", ".jar", ".msi", ".rpm"}},
	{name: "Code", extensions: []string{
		".c", ".cpp", ".java", ".py", ".js", ".class", ".h", ".sh",
		".bat", ".css", ".go", ".rs", ".cs", ".swift", ".r", ".php",
		".dart", ".kt", ".mat", ".pl", ".rb", ".scala",
	}},
	{name: "Code/Markup", extensions: []string{".html", ".xml", ".xhtml", ".mhtml"}},
	{name: "Code/Database", extensions: []string{".sql", ".db", ".json", ".csv"}},
}

// Default returns the built-in category table in its canonical order.
func Default() *Table {
	t := &Table{entries: make([]entry, 0, len(defaultCategories))}
	for _, e := range defaultCategories {
		t.entries = append(t.entries, e.clone())
	}
	return t
}

// DefaultMap returns the built-in categories keyed by name. Used to seed
// sample configuration files.
func DefaultMap() map[string][]string {
	out := make(map[string][]string, len(defaultCategories))
	for _, e := range defaultCategories {
		out[e.name] = append([]string(nil), e.extensions...)
	}
	return out
}
