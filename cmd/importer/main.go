// Command importer converts a product spreadsheet into the flat JSON catalog
// the API serves. The catalog is read-only at runtime; this tool is the only
// write path for products.
//
// Expected columns: id, name, category, price, description, image.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func main() {
	in := flag.String("in", "products.xlsx", "input spreadsheet")
	sheet := flag.String("sheet", "Products", "sheet name")
	out := flag.String("out", "data/products.json", "output catalog file")
	flag.Parse()

	xlsx, err := excelize.OpenFile(*in)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open spreadsheet")
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(*sheet)
	if err != nil {
		logrus.WithError(err).WithField("sheet", *sheet).Fatal("failed to read sheet")
	}

	products := []map[string]any{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		if len(row) < 4 {
			logrus.WithField("row", i).Warn("skipped: not enough columns")
			continue
		}

		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{"row": i, "price": row[3]}).Warn("skipped: invalid price")
			continue
		}

		product := map[string]any{
			"id":       row[0],
			"name":     row[1],
			"category": row[2],
			"price":    price,
		}
		if len(row) > 4 {
			product["description"] = row[4]
		}
		if len(row) > 5 {
			product["image"] = row[5]
		}
		products = append(products, product)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		logrus.WithError(err).Fatal("failed to encode catalog")
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		logrus.WithError(err).WithField("out", *out).Fatal("failed to write catalog")
	}

	logrus.WithFields(logrus.Fields{"count": len(products), "out": *out}).Info("catalog written")
}
