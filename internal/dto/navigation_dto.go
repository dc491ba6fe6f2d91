package dto

type NavigateSiteRequest struct {
	SiteId string `json:"site_id" validate:"required"`
}

type NavigateSectionRequest struct {
	SectionId string `json:"section_id" validate:"required"`
}

type NavigationStateResponse struct {
	SessionId        string `json:"session_id"`
	CurrentPage      string `json:"current_page"`
	CurrentSiteId    string `json:"current_site_id,omitempty"`
	CurrentSectionId string `json:"current_section_id,omitempty"`
	PendingQAId      string `json:"pending_qa_id,omitempty"`
}
