package crm_service

import (
	"time"

	"travel-crm-service/usecase"
)

// MoveCardRequest represents a drag-and-drop between pipeline columns
type MoveCardRequest struct {
	CardID string `json:"card_id" validate:"required,ulid"`
	Kind   string `json:"tipo" validate:"required,oneof=lead quote"`
	Target string `json:"coluna_destino" validate:"required,oneof=LEAD COTAR AGUARDANDO_CLIENTE APROVADO REPROVADO"`
	// Value and Cost carry the simplified figures captured when a quote is
	// dropped on APROVADO
	Value *float64 `json:"valor,omitempty" validate:"omitempty,min=0"`
	Cost  *float64 `json:"custo,omitempty" validate:"omitempty,min=0"`
	// Confirmed acknowledges a move away from a launched sale, which deletes
	// the sale's ledger rows
	Confirmed bool `json:"confirmado,omitempty"`
}

// MoveCardResponse reports the result of a pipeline move
type MoveCardResponse struct {
	QuoteID string `json:"cotacao_id,omitempty"`
	Status  string `json:"status"`
}

// BoardCardResponse is one card of the pipeline view
type BoardCardResponse struct {
	ID         string  `json:"id"`
	Kind       string  `json:"tipo"`
	Code       string  `json:"codigo,omitempty"`
	Title      string  `json:"titulo,omitempty"`
	ClientName string  `json:"cliente_nome"`
	Value      float64 `json:"valor"`
	Launched   bool    `json:"lancada"`
	CreatedAt  string  `json:"created_at"`
}

// BoardColumnResponse is one pipeline column with its cards and value total
type BoardColumnResponse struct {
	Key        string              `json:"coluna"`
	Cards      []BoardCardResponse `json:"cards"`
	TotalValue float64             `json:"valor_total"`
}

// BoardResponse is the whole Kanban view
type BoardResponse struct {
	Columns []BoardColumnResponse `json:"colunas"`
}

// MoveCardRequestToInput converts MoveCardRequest to the usecase input
func MoveCardRequestToInput(req *MoveCardRequest) usecase.MoveCardInput {
	return usecase.MoveCardInput{
		CardID:    req.CardID,
		Kind:      req.Kind,
		Target:    req.Target,
		Value:     req.Value,
		Cost:      req.Cost,
		Confirmed: req.Confirmed,
	}
}

// MoveCardResultToResponse converts the usecase move result to MoveCardResponse
func MoveCardResultToResponse(result *usecase.MoveCardResult) *MoveCardResponse {
	return &MoveCardResponse{
		QuoteID: result.QuoteID,
		Status:  result.Status,
	}
}

// BoardToResponse converts the usecase board view to BoardResponse
func BoardToResponse(board *usecase.Board) *BoardResponse {
	resp := &BoardResponse{Columns: make([]BoardColumnResponse, 0, len(board.Columns))}
	for _, column := range board.Columns {
		columnResp := BoardColumnResponse{
			Key:        column.Key,
			Cards:      make([]BoardCardResponse, 0, len(column.Cards)),
			TotalValue: column.TotalValue,
		}
		for _, card := range column.Cards {
			columnResp.Cards = append(columnResp.Cards, BoardCardResponse{
				ID:         card.ID,
				Kind:       card.Kind,
				Code:       card.Code,
				Title:      card.Title,
				ClientName: card.ClientName,
				Value:      card.Value,
				Launched:   card.Launched,
				CreatedAt:  card.CreatedAt.Format(time.RFC3339),
			})
		}
		resp.Columns = append(resp.Columns, columnResp)
	}
	return resp
}
