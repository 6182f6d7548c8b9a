package storage

import "time"

// Submission — 제출 완료된 작업허가서, 생성 후 수정 불가
type Submission struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
	// 목록 표시용 — 제출 시각의 ko-KR 표기
	Date string `json:"date"`
	Time string `json:"time"`
	// 목록 표시용 — 1단계에서 복사
	CompanyName string `json:"companyName"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`

	Step1Data ApplicantInfo  `json:"step1Data"`
	Step2Data Acknowledgment `json:"step2Data"`
	Step3Data PermitForm     `json:"step3Data"`
}
