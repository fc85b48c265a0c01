package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/LaryssaDev/site-para-gueto-fya/store"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Date", "Customer", "Phone", "Email",
			"Items", "Pieces", "Subtotal", "Discount %", "Discount", "Total", "Status",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.Customer.Name)
			row.AddCell().SetValue(o.Customer.Phone)
			row.AddCell().SetValue(o.Customer.Email)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.TotalItems())
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.DiscountPercent * 100)
			row.AddCell().SetValue(o.DiscountAmount)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(string(o.Status))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
