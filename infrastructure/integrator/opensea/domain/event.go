package openseadomain

import (
	"strconv"
	"strings"
)

// EventsResponse é o corpo retornado pelo endpoint de eventos da OpenSea
type EventsResponse struct {
	Next        *string      `json:"next"`
	AssetEvents []AssetEvent `json:"asset_events"`
	Detail      string       `json:"detail,omitempty"`
}

// NextCursor retorna o cursor da próxima página ou vazio quando acabou
func (r *EventsResponse) NextCursor() string {
	if r.Next == nil {
		return ""
	}
	return *r.Next
}

// AssetEvent é um evento de venda bem sucedida
type AssetEvent struct {
	TotalPrice     NumericString `json:"total_price"`
	EventTimestamp string        `json:"event_timestamp"`
	PaymentToken   *PaymentToken `json:"payment_token"`
	Asset          *Asset        `json:"asset"`
	AssetBundle    *AssetBundle  `json:"asset_bundle"`
}

type PaymentToken struct {
	Symbol   string        `json:"symbol"`
	Decimals int           `json:"decimals"`
	EthPrice NumericString `json:"eth_price"`
}

type Asset struct {
	Name          string         `json:"name"`
	AssetContract *AssetContract `json:"asset_contract"`
}

type AssetBundle struct {
	Name          string         `json:"name"`
	AssetContract *AssetContract `json:"asset_contract"`
}

type AssetContract struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// CollectionName lê o nome do contrato do ativo ou, em vendas em lote, do bundle
func (e AssetEvent) CollectionName() string {
	if e.Asset != nil && e.Asset.AssetContract != nil && e.Asset.AssetContract.Name != "" {
		return e.Asset.AssetContract.Name
	}
	if e.AssetBundle != nil && e.AssetBundle.AssetContract != nil {
		return e.AssetBundle.AssetContract.Name
	}
	return ""
}

// NumericString aceita tanto números quanto strings numéricas no JSON.
// A OpenSea envia total_price e eth_price como string, mas nem sempre.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*n = NumericString(strings.TrimSpace(unquoted))
		return nil
	}

	*n = NumericString(raw)
	return nil
}

func (n NumericString) String() string {
	return string(n)
}
