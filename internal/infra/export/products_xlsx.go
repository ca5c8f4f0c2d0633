package export

import (
	"io"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"

	"github.com/tealeg/xlsx"
)

const ProductsContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var productHeaders = []string{
	"ID", "Name", "Description", "Category", "Price", "Stock", "Images", "CreatedAt", "UpdatedAt",
}

// 商品一覧を1シートのxlsxにして書き出す
func WriteProducts(w io.Writer, products []model.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range productHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)

		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		row.AddCell().SetValue(category)

		price, _ := p.Price.Float64()
		row.AddCell().SetFloat(price)
		row.AddCell().SetInt64(p.Stock)
		row.AddCell().SetValue(strings.Join(p.Images, ","))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
