package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jh1234887/safe-work-permit/internal/storage"
)

type GenerateExcelStorage interface {
	GetSubmissions(ctx context.Context) ([]*storage.Submission, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// 열 구성은 관리자 목록 화면과 맞춰져 있어 변경 시 같이 바꿔야 함
var headers = []string{
	"작성일", "시간", "회사명", "성명", "연락처",
	"작업장소", "작업내용", "설비(기기)", "허가번호", "허가일자",
}

const sheetName = "작업허가서목록"

// GenerateExcel — 제출 목록을 한 시트짜리 엑셀로, 목록 순서 그대로 한 건당 한 행
func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	subs, err := g.storage.GetSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch submissions: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range headers {
		f.SetCellValue(sheetName, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheetName, "A1", cellName(len(headers), 1), headerStyle)

	for rowIdx, sub := range subs {
		rowNum := rowIdx + 2

		f.SetCellValue(sheetName, cellName(1, rowNum), sub.Date)
		f.SetCellValue(sheetName, cellName(2, rowNum), sub.Time)
		f.SetCellValue(sheetName, cellName(3, rowNum), sub.CompanyName)
		f.SetCellValue(sheetName, cellName(4, rowNum), sub.Name)
		f.SetCellValue(sheetName, cellName(5, rowNum), sub.Contact)
		f.SetCellValue(sheetName, cellName(6, rowNum), sub.Step3Data.WorkLocation)
		f.SetCellValue(sheetName, cellName(7, rowNum), sub.Step3Data.WorkContent)
		f.SetCellValue(sheetName, cellName(8, rowNum), sub.Step3Data.Equipment)
		f.SetCellValue(sheetName, cellName(9, rowNum), sub.Step3Data.PermitNumber)
		f.SetCellValue(sheetName, cellName(10, rowNum), sub.Step3Data.PermitDate)
	}

	// 첫 행 고정
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheetName, "A", "J", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
