package storage

// 저장 키 — 기존 localStorage 데이터와 호환되어야 하므로 변경 금지
const (
	DraftKeyStep1 = "permit-step1"
	DraftKeyStep2 = "permit-step2"
	DraftKeyStep3 = "permit-step3"
)

func IsDraftKey(key string) bool {
	switch key {
	case DraftKeyStep1, DraftKeyStep2, DraftKeyStep3:
		return true
	}
	return false
}
