package constant

const (
	// LoadCapacityAnswer is returned for any query mentioning "load" or
	// "capacity", regardless of which site or section is open.
	LoadCapacityAnswer = `Based on the structural engineering documentation for the Harbor Bridge project, the load requirements are:

**Dead Load Capacity**: 25,000 tons - This represents the permanent weight of the bridge structure itself, including steel framework, concrete decking, and fixed installations.

**Live Load Capacity**: 15,000 tons - This accounts for variable loads including vehicle traffic, pedestrians, and temporary loads during maintenance.

**Wind Load Design**: 2,500 tons at 200 km/h - The bridge is designed to withstand extreme weather conditions including design storm events.

The foundation system extends 35 meters below the sea floor to provide adequate bearing capacity. All calculations follow Eurocode standards with Danish National Annexes, and safety factors exceed minimum requirements by 15%.`

	// SafetyAnswer is returned for queries mentioning "safety" (unless the
	// load/capacity rule already matched).
	SafetyAnswer = `The Harbor Bridge project implements comprehensive safety protocols:

**Personal Protective Equipment (PPE)**:
- Level 1: Hard hat, safety boots, high-vis vest (all personnel)
- Level 2: Fall protection harness (work above 2m height)
- Level 3: Marine rescue equipment (work near water)

**Emergency Procedures**:
- Fire Emergency: Evacuation routes marked in red, muster points at safe distance
- Marine Incident: Direct coast guard contact (+45 72 19 60 18)
- Medical Emergency: On-site medic available 24/7 with helicopter landing pad

**Restricted Access Zones**:
- 50-meter radius around crane operations
- Underwater work areas with maritime exclusion
- High-voltage electrical installations (authorized personnel only)`

	// GenericAnswerTemplate is the fallback. Placeholders: humanized
	// section name, site name, the query verbatim.
	GenericAnswerTemplate = `Based on the %s documentation for the %s, I found relevant information about your query: "%s".

This response demonstrates how the RAG pipeline would search through your document embeddings, retrieve the most relevant chunks, and generate a contextual answer with proper source citations.

In production, this would include:
- Semantic search through ChromaDB embeddings
- Retrieval of relevant document chunks
- LLM-generated response with source attribution
- Confidence scoring and relevance ranking`
)

const (
	// SafetyCitationDocument describes the single fixed source attached to
	// safety answers.
	SafetyCitationDocument = "Safety_Management_Plan.pdf"
	SafetyCitationPage     = 12
	SafetyCitationExcerpt  = "All personnel working above 2 meters must use fall protection harness systems..."
	SafetyCitationTableRef = "PPE Requirements Table 4.1"
)

// SafetyCitationConfidence is the fixed confidence score for the safety
// source.
const SafetyCitationConfidence = 0.94

// GenericAnswerMaxSources caps how many of a section's citations ride
// along with a generic answer.
const GenericAnswerMaxSources = 2
