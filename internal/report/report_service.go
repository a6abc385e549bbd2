package report

import (
	"bytes"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"github.com/xuri/excelize/v2"
)

const SheetName = "การลา"

var headers = []string{
	"ID",
	"รหัสพนักงาน",
	"ชื่อ-สกุล",
	"ตำแหน่ง",
	"แผนก",
	"ประเภทการลา",
	"เหตุผล",
	"วันที่เริ่มต้น",
	"วันที่สิ้นสุด",
	"ที่อยู่ติดต่อ",
	"สถานะ",
}

// BuildWorkbook renders the given records as an xlsx workbook: a Thai
// header row, then one row per record in cache order. Type and status show
// their fixed Thai labels; unknown types fall back to the raw value.
func BuildWorkbook(records []leave.Record) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, r := range records {
		typeLabel := r.Type.Label()
		if typeLabel == "" {
			typeLabel = string(r.Type)
		}
		values := []string{
			r.ID,
			r.EmployeeID,
			r.Name,
			r.Position,
			r.Department,
			typeLabel,
			r.Reason,
			r.Start,
			r.End,
			r.Contact,
			r.Status.Label(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
