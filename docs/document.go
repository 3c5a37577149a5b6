package docs

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type FileType string

const (
	FileTypePDF     FileType = "PDF"
	FileTypeDOCX    FileType = "DOCX"
	FileTypeCSV     FileType = "CSV"
	FileTypeTXT     FileType = "TXT"
	FileTypeUnknown FileType = "UNKNOWN"
)

// Document is one uploaded document known to the session. InternalName is
// the server-assigned key that queries and removals reference.
type Document struct {
	InternalName string
	DisplayName  string
	FileType     FileType
	SizeBytes    int64
	SizeDisplay  string
	ChunkCount   int
	UploadTime   time.Time
	SessionID    string
}

// ParseFileType maps the server's file_type field to the enum, falling back
// to the filename extension when the field is absent or unrecognized.
func ParseFileType(fileType, filename string) FileType {
	switch strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(fileType), ".")) {
	case "PDF":
		return FileTypePDF
	case "DOCX", "DOC":
		return FileTypeDOCX
	case "CSV":
		return FileTypeCSV
	case "TXT", "TEXT":
		return FileTypeTXT
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FileTypePDF
	case ".docx", ".doc":
		return FileTypeDOCX
	case ".csv":
		return FileTypeCSV
	case ".txt":
		return FileTypeTXT
	default:
		return FileTypeUnknown
	}
}

// FormatSize renders a byte count for display, e.g. "2.5 MB".
func FormatSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)

	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
