package output

import (
	"fmt"
	"strings"

	"github.com/hotdogccs/hotdogsim/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"
)

// historyRow flattens one sales record for parquet. The loss lists are joined
// with "|" so analytics tools get a single string column.
type historyRow struct {
	Date                   string `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TotalClients           int32  `parquet:"name=total_clients, type=INT32"`
	ClientsChangedOpinion  int32  `parquet:"name=clients_changed_opinion, type=INT32"`
	ClientsCouldNotBuy     int32  `parquet:"name=clients_could_not_buy, type=INT32"`
	TotalHotdogsSold       int32  `parquet:"name=total_hotdogs_sold, type=INT32"`
	TotalSidesSold         int32  `parquet:"name=total_sides_sold, type=INT32"`
	BestSellingItem        string `parquet:"name=best_selling_item, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	ItemsCausingLoss       string `parquet:"name=items_causing_loss, type=BYTE_ARRAY, convertedtype=UTF8"`
	IngredientsCausingLoss string `parquet:"name=ingredients_causing_loss, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ExportParquet writes the full sales history to a local parquet file.
func ExportParquet(records []models.SalesRecord, path string) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create local file writer: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(historyRow), 4)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for _, rec := range records {
		row := historyRow{
			Date:                   rec.Date,
			TotalClients:           int32(rec.TotalClients),
			ClientsChangedOpinion:  int32(rec.ClientsChangedOpinion),
			ClientsCouldNotBuy:     int32(rec.ClientsCouldNotBuy),
			TotalHotdogsSold:       int32(rec.TotalHotdogsSold),
			TotalSidesSold:         int32(rec.TotalSidesSold),
			BestSellingItem:        rec.BestSellingItem,
			ItemsCausingLoss:       strings.Join(rec.ItemsCausingLoss, "|"),
			IngredientsCausingLoss: strings.Join(rec.IngredientsCausingLoss, "|"),
		}
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
