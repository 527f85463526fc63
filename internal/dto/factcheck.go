package dto

type FactCheckRequest struct {
	Claim string `json:"claim" validate:"required"`
}
