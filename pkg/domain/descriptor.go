package domain

// ExchangeDescriptor is one entry of the catalog: an exchange and its stocks.
type ExchangeDescriptor struct {
	Name      string            `json:"stockExchange" yaml:"stockExchange" mapstructure:"stockExchange"`
	TopStocks []StockDescriptor `json:"topStocks" yaml:"topStocks" mapstructure:"topStocks"`
}

// StockDescriptor is a stock and its quote.
type StockDescriptor struct {
	Name  string  `json:"stockName" yaml:"stockName" mapstructure:"stockName"`
	Price float64 `json:"price" yaml:"price" mapstructure:"price"`
}

// Catalog field names as they appear in the input document.
const (
	FieldExchange  = "stockExchange"
	FieldTopStocks = "topStocks"
	FieldStockName = "stockName"
	FieldPrice     = "price"
)
