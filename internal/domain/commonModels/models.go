package commonModels

import "time"

type Document struct {
	Id          string    `json:"source_doc_id"`
	Name        string    `json:"doc_name"`
	SourcePath  string    `json:"source_path"`
	IngestedAt  time.Time `json:"ingested_at"`
	ContentType DocType   `json:"contentType"`
}

// QAPair is one row of the knowledge base. Immutable once persisted;
// duplicates are allowed to accumulate.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var ERR DocType = "ERROR"
