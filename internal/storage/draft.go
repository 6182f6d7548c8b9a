package storage

// DraftForKey — 키에 맞는 초안 복원과 단계 통과 여부를 한 번에.
// 핸들러가 단계 종류를 몰라도 되도록 여기서 분기한다.
func DraftForKey(key string, raw []byte) (draft interface{}, complete bool) {
	switch key {
	case DraftKeyStep1:
		info := ParseApplicantInfo(raw)
		return info, info.IsComplete()
	case DraftKeyStep2:
		ack := ParseAcknowledgment(raw)
		return ack, ack.IsComplete()
	case DraftKeyStep3:
		form := ParsePermitForm(raw)
		return form, form.IsComplete()
	}
	return nil, false
}
