package storage

import (
	"encoding/json"
	"strings"
)

// Acknowledgment — 2단계 안전작업허가 기준 동의
type Acknowledgment struct {
	Agreed     bool   `json:"agreed"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	FileOpened bool   `json:"fileOpened"`
}

func ParseAcknowledgment(raw []byte) Acknowledgment {
	var ack Acknowledgment
	if len(raw) == 0 {
		return ack
	}
	if err := json.Unmarshal(raw, &ack); err != nil {
		return Acknowledgment{}
	}
	return ack.Normalized()
}

// Normalized: 첨부파일을 열람하지 않았으면 동의는 무효
func (a Acknowledgment) Normalized() Acknowledgment {
	if !a.FileOpened {
		a.Agreed = false
	}
	return a
}

func (a Acknowledgment) IsComplete() bool {
	return a.Agreed && strings.TrimSpace(a.Name) != "" && strings.TrimSpace(a.Date) != ""
}
