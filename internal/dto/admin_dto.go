package dto

type UpdateConfigRequest struct {
	Mode       string  `json:"mode" validate:"required,oneof=mock real"`
	SfUsername *string `json:"sfUsername,omitempty"`
}

type UpdateConfigResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Mode string `json:"mode"`
}
