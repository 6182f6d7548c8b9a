package storage

import "encoding/json"

const GasRowCount = 6

type GasRow struct {
	Substance string `json:"substance"`
	Result    string `json:"result"`
	Time      string `json:"time"`
	Measurer  string `json:"measurer"`
}

type PermitType struct {
	General bool `json:"general"`
	Fire    bool `json:"fire"`
}

// PermitForm — 3단계 작업허가서 전체 입력
type PermitForm struct {
	// 광동제약 담당자 작성란
	PermitNumber string `json:"permitNumber"`
	PermitDate   string `json:"permitDate"`
	DeptManager  string `json:"deptManager"`
	DeptApprover string `json:"deptApprover"`

	// 작업허가기간
	PeriodFromDate string `json:"periodFromDate"`
	PeriodFromHour string `json:"periodFromHour"`
	PeriodFromMin  string `json:"periodFromMin"`
	PeriodToDate   string `json:"periodToDate"`
	PeriodToHour   string `json:"periodToHour"`
	PeriodToMin    string `json:"periodToMin"`

	WorkLocation     string `json:"workLocation"`
	Equipment        string `json:"equipment"`
	WorkContent      string `json:"workContent"`
	Contractor       string `json:"contractor"`
	EmergencyContact string `json:"emergencyContact"`

	PermitType PermitType `json:"permitType"`

	// 필요/확인 체크 — 항목 문구가 키
	SafetyChecks   map[string]bool `json:"safetyChecks"`
	SafetyConfirms map[string]bool `json:"safetyConfirms"`

	// 보충작업허가 — SuppCheckKey 로 만든 "<구분>_<항목>" 이 키
	SupplementaryChecks   map[string]bool `json:"supplementaryChecks"`
	SupplementaryConfirms map[string]bool `json:"supplementaryConfirms"`

	GasChecks map[string]bool `json:"gasChecks"`
	GasRows   []GasRow        `json:"gasRows"`

	// 작업완료
	CompletionTime        string `json:"completionTime"`
	CompletionConfirmer   string `json:"completionConfirmer"`
	CompletionRestoration string `json:"completionRestoration"`

	// 안전조치확인
	SafetyConfirmPerson   string `json:"safetyConfirmPerson"`
	SafetyConfirmApprover string `json:"safetyConfirmApprover"`

	// 공사업체 책임자
	ContractorPosition string `json:"contractorPosition"`
	ContractorName     string `json:"contractorName"`

	// 작업허가 연장 — 전부 자유 입력, 숫자 검증 없음
	ExtensionYear      string `json:"extensionYear"`
	ExtensionMonth     string `json:"extensionMonth"`
	ExtensionDay       string `json:"extensionDay"`
	ExtensionFrom      string `json:"extensionFrom"`
	ExtensionTo        string `json:"extensionTo"`
	ExtensionApplicant string `json:"extensionApplicant"`
	ExtensionApprover  string `json:"extensionApprover"`
}

func DefaultPermitForm() PermitForm {
	return PermitForm{
		SafetyChecks:          map[string]bool{},
		SafetyConfirms:        map[string]bool{},
		SupplementaryChecks:   map[string]bool{},
		SupplementaryConfirms: map[string]bool{},
		GasChecks:             map[string]bool{},
		GasRows:               make([]GasRow, GasRowCount),
	}
}

// ParsePermitForm — 저장된 부분 데이터를 기본값 위에 병합 복원
// 깨진 JSON은 기본 폼으로 처리
func ParsePermitForm(raw []byte) PermitForm {
	form := DefaultPermitForm()
	if len(raw) == 0 {
		return form
	}
	if err := json.Unmarshal(raw, &form); err != nil {
		return DefaultPermitForm()
	}
	return form.normalized()
}

// normalized: nil 맵 방지, 가스농도 측정은 항상 6행 유지
func (f PermitForm) normalized() PermitForm {
	if f.SafetyChecks == nil {
		f.SafetyChecks = map[string]bool{}
	}
	if f.SafetyConfirms == nil {
		f.SafetyConfirms = map[string]bool{}
	}
	if f.SupplementaryChecks == nil {
		f.SupplementaryChecks = map[string]bool{}
	}
	if f.SupplementaryConfirms == nil {
		f.SupplementaryConfirms = map[string]bool{}
	}
	if f.GasChecks == nil {
		f.GasChecks = map[string]bool{}
	}
	switch {
	case f.GasRows == nil:
		f.GasRows = make([]GasRow, GasRowCount)
	case len(f.GasRows) < GasRowCount:
		f.GasRows = append(f.GasRows, make([]GasRow, GasRowCount-len(f.GasRows))...)
	case len(f.GasRows) > GasRowCount:
		f.GasRows = f.GasRows[:GasRowCount]
	}
	return f
}

// IsComplete — 3단계는 필수 항목이 없어 완료 버튼이 항상 활성화된다
func (f PermitForm) IsComplete() bool {
	return true
}
