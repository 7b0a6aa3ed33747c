package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rdclab2001/rdc-backend/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// DownloadExcel exports appointments and website leads as a two-sheet
// workbook, columns in live schema order.
func DownloadExcel(c *gin.Context) {
	file := excelize.NewFile()

	sheets := []struct {
		Name  string
		Table string
	}{
		{Name: "Appointments", Table: "appointments"},
		{Name: "Website Leads", Table: "website_leads"},
	}

	for _, sheet := range sheets {
		columns, rows, err := Models.FetchRows(sheet.Table)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		file.NewSheet(sheet.Name)
		for i, col := range columns {
			file.SetCellValue(sheet.Name, fmt.Sprintf("%s1", excelize.ToAlphaString(i)), col)
		}
		for r, row := range rows {
			for i, col := range columns {
				cell := fmt.Sprintf("%s%d", excelize.ToAlphaString(i), r+2)
				file.SetCellValue(sheet.Name, cell, row[col])
			}
		}
	}
	file.DeleteSheet("Sheet1")

	filename := "./RDC_Data.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export"})
		return
	}
	c.FileAttachment(filename, "RDC_Data.xlsx")
}
