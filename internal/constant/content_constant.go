package constant

// Seeded wiki content. Only the Harbor Bridge project ships with written
// sections; every other (site, section) pair renders the "being
// processed" placeholder.

const HarborBridgeOverviewContent = `# Harbor Bridge Renovation Project

## Project Summary
The Harbor Bridge Renovation is a comprehensive infrastructure upgrade project aimed at modernizing the historic Copenhagen Harbor Bridge while preserving its architectural heritage.

### Key Objectives
- Structural reinforcement for increased load capacity
- Integration of modern safety systems
- Environmental sustainability improvements
- Minimal disruption to harbor traffic

### Timeline
- **Start Date**: March 2024
- **Expected Completion**: December 2025
- **Current Phase**: Foundation reinforcement

### Budget Allocation
- **Total Budget**: 450M DKK
- **Spent to Date**: 292M DKK
- **Remaining**: 158M DKK

## Project Stakeholders
- **Client**: Copenhagen Municipality
- **Main Contractor**: Nordic Infrastructure A/S
- **Engineering**: Ramboll Group
- **Environmental Consultant**: COWI A/S`

const HarborBridgeStructuralContent = `# Structural Engineering Plans

## Foundation Specifications
The bridge foundation requires significant reinforcement to meet modern load standards and extend service life by 75 years.

### Load Requirements
- **Dead Load**: 25,000 tons (permanent structure weight)
- **Live Load**: 15,000 tons (traffic and pedestrians)
- **Wind Load**: 2,500 tons at 200 km/h (design storm)
- **Seismic Rating**: Zone 2 compliance (EU standards)

### Materials Specification
- **Primary Steel**: Grade S355 structural steel with enhanced corrosion resistance
- **Concrete**: C40/50 high-performance concrete with marine additives
- **Reinforcement**: B500B ribbed steel bars, epoxy-coated for marine environment

### Critical Dimensions
- **Main Span**: 120 meters (no intermediate supports)
- **Tower Height**: 85 meters above mean sea level
- **Foundation Depth**: 35 meters below sea floor
- **Clearance**: 45 meters for ship passage

## Engineering Calculations
All structural calculations follow Eurocode standards with Danish National Annexes. Safety factors exceed minimum requirements by 15%.

### Load Distribution Analysis
Foundation load distribution has been analyzed using finite element modeling. Peak stress concentrations occur at tower base connections.`

// SectionPlaceholderTemplate renders when a section has no written
// content yet. Placeholder: humanized section name.
const SectionPlaceholderTemplate = "Documentation for %s is being processed..."
