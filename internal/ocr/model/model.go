package model

type ExtractRequest struct {
	ImageURL string `json:"image_url"`
	FileType string `json:"file_type"`
}

type Vertex struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

type BoundingBox struct {
	Vertices []Vertex `json:"vertices"`
}

// Paragraph is one positioned text region of a recognized page.
type Paragraph struct {
	Text        string      `json:"text"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Confidence  float64     `json:"confidence"` // percent, 2 decimals
	ParagraphID int         `json:"paragraph_id"`
	BlockType   string      `json:"block_type"`
}

// Result is the normalized OCR output for one file.
type Result struct {
	Text       string      `json:"text"`
	Width      int32       `json:"width"`
	Height     int32       `json:"height"`
	Paragraphs []Paragraph `json:"paragraphs"`
	FileURL    string      `json:"file_url,omitempty"`
}

type BatchFile struct {
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
	Link     string `json:"link"`
}

type BatchRequest struct {
	Files []BatchFile `json:"files"`
}

type BatchItem struct {
	Result
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchItem `json:"results"`
}
