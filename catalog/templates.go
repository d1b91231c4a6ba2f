package catalog

import (
	"fmt"
	"sort"
)

// Registry holds the checklist templates, keyed by template id. It is built
// once at startup and read-only afterwards.
type Registry struct {
	templates map[TemplateID][]string
}

// NewRegistry returns the built-in template registry.
func NewRegistry() *Registry {
	return &Registry{templates: map[TemplateID][]string{
		TemplateQuoteStandard: {
			"Confirm requirements (SKU, qty, Incoterms, delivery date)",
			"Validate pricing tier / discounts",
			"Check stock / lead time",
			"Draft quote (PDF or formal format)",
			"Internal approval (if needed)",
			"Send quote + confirm receipt",
			"Set follow-up date",
		},
		TemplateRenewal: {
			"Confirm renewal scope and dates",
			"Review value delivered and usage",
			"Check pricing and uplift rules",
			"Identify renewal risks",
			"Prepare renewal proposal",
			"Send proposal and confirm receipt",
			"Schedule renewal follow-up",
		},
		TemplateNegotiation: {
			"Clarify decision criteria",
			"Prepare concessions strategy",
			"Align internally",
			"Run negotiation call",
			"Confirm commitments",
			"Send recap email",
			"Update forecast",
		},
		TemplateAfterSalesTicket: {
			"Acknowledge ticket and SLA",
			"Collect evidence",
			"Reproduce issue",
			"Define solution",
			"Update customer",
			"Confirm resolution",
		},
		TemplateRMAReturn: {
			"Validate return eligibility",
			"Issue RMA",
			"Arrange shipment",
			"Track diagnostics",
			"Confirm outcome",
			"Close case",
		},
		TemplateEscalation: {
			"Acknowledge escalation and set owner",
			"Assess impact and severity",
			"Align response internally",
			"Communicate action plan",
			"Track until resolved",
			"Send closure summary",
		},
		TemplateComplianceDocs: {
			"Confirm required documents",
			"Collect certificates",
			"Verify versions",
			"Send documents",
			"Confirm acceptance",
		},
		TemplateInfoToSend: {
			"Confirm what is needed",
			"Collect documents and data",
			"Verify versions are current",
			"Send information",
			"Confirm receipt",
		},
		TemplateProjectRollout: {
			"Define scope",
			"Assign stakeholders",
			"Define timeline",
			"Assess risks",
			"Kickoff meeting",
			"Weekly updates",
		},
		TemplateOnboarding: {
			"Send welcome package",
			"Collect account details",
			"Set up access and accounts",
			"Schedule kickoff call",
			"Confirm first milestone",
		},
		TemplateMeetingCustomer: {
			"Confirm objective",
			"Prepare agenda",
			"Review context",
			"Run meeting",
			"Capture actions",
			"Send recap",
		},
		TemplateMeetingInternal: {
			"Define decision",
			"Invite stakeholders",
			"Prepare pre-read",
			"Run meeting",
			"Assign actions",
		},
		TemplateBusinessTrip: {
			"Confirm trip objectives",
			"Schedule meetings",
			"Book travel",
			"Prepare materials",
			"Capture notes",
			"Post-trip follow-ups",
			"Submit expense report",
		},
		TemplateOnsiteVisit: {
			"Confirm visit objective and audience",
			"Schedule visit date",
			"Prepare materials",
			"Run visit",
			"Capture notes",
			"Send follow-ups",
		},
		TemplateTradeShow: {
			"Define event goals",
			"Register and book travel",
			"Prepare materials",
			"Capture leads",
			"Post-event follow-up",
		},
		TemplateShipmentFollowup: {
			"Confirm shipment details",
			"Request tracking",
			"Notify customer",
			"Monitor delivery",
			"Confirm receipt",
		},
		TemplatePaymentCollect: {
			"Confirm invoice details",
			"Send reminder",
			"Resolve blockers",
			"Confirm payment",
			"Close loop",
		},
		TemplateFollowUp: {
			"Review last contact",
			"Send follow-up",
			"Schedule next step",
		},
		TemplateTaskInternal: {
			"Clarify task",
			"Execute work",
			"Document result",
			"Notify stakeholders",
		},
	}}
}

// Lookup returns the ordered item texts for the given template id. The
// second result is false when the id is not in the registry, which is
// distinct from a template that happens to have no items.
func (r *Registry) Lookup(id TemplateID) ([]string, bool) {
	items, ok := r.templates[id]
	return items, ok
}

// IDs returns every registered template id, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return ids
}

// Covers verifies that every id the classifier can produce has a template.
// Wiring calls this at startup so a rule pointing at a missing template is a
// deploy-time failure, not a silent skip during card creation.
func (r *Registry) Covers(c *Classifier) error {
	var missing []string
	for _, id := range c.Reachable() {
		if _, ok := r.templates[id]; !ok {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("classifier ids missing from template registry: %v", missing)
	}
	return nil
}
