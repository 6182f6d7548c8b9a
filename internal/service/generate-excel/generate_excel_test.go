package generate_excel

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetSubmissions(ctx context.Context) ([]*storage.Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Submission), args.Error(1)
}

func testSubmission(id, company string) *storage.Submission {
	form := storage.DefaultPermitForm()
	form.WorkLocation = "보일러실"
	form.WorkContent = "배관 용접"
	form.Equipment = "보일러 #2"
	form.PermitNumber = "2024-001"
	form.PermitDate = "2024-06-01"

	return &storage.Submission{
		ID:          id,
		SubmittedAt: time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		Date:        "2024. 6. 1.",
		Time:        "10:30",
		CompanyName: company,
		Name:        "Kim",
		Contact:     "010-0000-0000",
		Step3Data:   form,
	}
}

func TestGenerateExcel(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("GetSubmissions", mock.Anything).Return([]*storage.Submission{
		testSubmission("id-2", "Acme"),
		testSubmission("id-1", "Beta"),
	}, nil)

	svc := NewGenerateService(mockStorage)

	raw, err := svc.GenerateExcel(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 고정 헤더
	assert.Equal(t, headers, rows[0])

	// 목록 순서 그대로 한 건당 한 행
	assert.Equal(t, []string{
		"2024. 6. 1.", "10:30", "Acme", "Kim", "010-0000-0000",
		"보일러실", "배관 용접", "보일러 #2", "2024-001", "2024-06-01",
	}, rows[1])
	assert.Equal(t, "Beta", rows[2][2])

	mockStorage.AssertExpectations(t)
}

func TestGenerateExcel_Empty(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("GetSubmissions", mock.Anything).Return([]*storage.Submission{}, nil)

	svc := NewGenerateService(mockStorage)

	raw, err := svc.GenerateExcel(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1) // 헤더만
}

func TestGenerateExcel_StorageError(t *testing.T) {
	mockStorage := new(MockStorage)
	mockStorage.On("GetSubmissions", mock.Anything).Return(nil, assert.AnError)

	svc := NewGenerateService(mockStorage)

	_, err := svc.GenerateExcel(context.Background())
	assert.Error(t, err)
}
