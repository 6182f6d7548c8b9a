package storage

import (
	"encoding/json"
	"strings"
)

// ApplicantInfo — 1단계 신청인 정보
type ApplicantInfo struct {
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Contact     string `json:"contact"`
}

// ParseApplicantInfo — 저장된 JSON에서 초안 복원
// 없는 필드는 빈 값, 깨진 JSON은 빈 초안으로 처리
func ParseApplicantInfo(raw []byte) ApplicantInfo {
	var info ApplicantInfo
	if len(raw) == 0 {
		return info
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return ApplicantInfo{}
	}
	return info
}

// IsComplete — 네 필드 모두 공백 제외 입력이 있어야 다음 단계로 진행
func (a ApplicantInfo) IsComplete() bool {
	return strings.TrimSpace(a.CompanyName) != "" &&
		strings.TrimSpace(a.Name) != "" &&
		strings.TrimSpace(a.Position) != "" &&
		strings.TrimSpace(a.Contact) != ""
}
