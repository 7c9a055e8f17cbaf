package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferDocumentType(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"FIR_2024.pdf", "FIR"},
		{"fir copy.pdf", "FIR"},
		{"aadhaar_card.jpg", "Aadhaar"},
		{"Aadhar-scan.png", "Aadhaar"},
		{"MEDICAL_records.pdf", "Medical Report"},
		{"complaint-draft.docx", "Complaint"},
		{"legal_notice_v2.pdf", "Legal Notice"},
		{"bounced_cheque.png", "Bounced Cheque"},
		{"cctv_video.mp4", "Video Evidence"},
		{"call_audio.mp3", "Audio Evidence"},
		{"random.pdf", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDocumentType(tt.fileName))
		})
	}
}
