package memory

import (
	"time"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/entity"
)

// seedContent loads the demo projects. Harbor Bridge is the only site
// with written sections and the structural_plans citation table; the
// office complex exists to show the placeholder path.
func seedContent(r *ContentRepository) {
	r.AddSite(entity.Site{
		Id:          "harbor_bridge",
		Name:        "Harbor Bridge Renovation",
		Location:    "Copenhagen Harbor",
		Status:      constant.SiteStatusInProgress,
		Documents:   []string{"Structural Plans", "Safety Protocols", "Material Specs", "Environmental Report"},
		LastUpdated: time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		Progress:    65,
		Sections: []entity.SectionRef{
			{Id: "overview", Title: "Project Overview"},
			{Id: "structural_plans", Title: "Structural Engineering"},
			{Id: "safety_protocols", Title: "Safety Management"},
			{Id: "material_specs", Title: "Material Specifications"},
			{Id: "environmental", Title: "Environmental Impact"},
		},
	})

	r.AddSite(entity.Site{
		Id:          "office_complex",
		Name:        "Green Office Complex",
		Location:    "Ørestad District",
		Status:      constant.SiteStatusPlanning,
		Documents:   []string{"Environmental Impact", "Foundation Plans", "HVAC Systems", "Energy Analysis"},
		LastUpdated: time.Date(2025, time.January, 18, 0, 0, 0, 0, time.UTC),
		Progress:    25,
		Sections: []entity.SectionRef{
			{Id: "overview", Title: "Project Overview"},
			{Id: "foundation", Title: "Foundation Engineering"},
			{Id: "hvac", Title: "HVAC Systems"},
			{Id: "environmental", Title: "Environmental Analysis"},
			{Id: "energy", Title: "Energy Efficiency"},
		},
	})

	r.setSection("harbor_bridge", "overview", constant.HarborBridgeOverviewContent)
	r.setSection("harbor_bridge", "structural_plans", constant.HarborBridgeStructuralContent)

	loadTable := "Load Requirements Table 3.2"
	foundationFigure := "Foundation Cross-Section Figure 2.1"
	steelTable := "Steel Grades Table 5.1"

	r.citations["structural_plans"] = []entity.SourceCitation{
		{
			Document:   "Structural_Engineering_Report.pdf",
			Page:       15,
			Excerpt:    "The bridge foundation requires a dead load capacity of 25,000 tons with live load capacity of 15,000 tons...",
			Confidence: 0.95,
			TableRef:   &loadTable,
		},
		{
			Document:   "Foundation_Analysis.pdf",
			Page:       8,
			Excerpt:    "Foundation depth of 35 meters below sea floor provides adequate bearing capacity for design loads...",
			Confidence: 0.92,
			ImageRef:   &foundationFigure,
		},
		{
			Document:   "Material_Specifications.pdf",
			Page:       22,
			Excerpt:    "Grade S355 structural steel with marine-grade corrosion protection coating system...",
			Confidence: 0.88,
			TableRef:   &steelTable,
		},
	}
}
