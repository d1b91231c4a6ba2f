package catalog

import "strings"

// TemplateID names a checklist template. The set is closed: classification
// only ever selects from the ids declared here.
type TemplateID string

const (
	TemplateQuoteStandard    TemplateID = "quote_standard"
	TemplateRenewal          TemplateID = "renewal"
	TemplateNegotiation      TemplateID = "negotiation"
	TemplateAfterSalesTicket TemplateID = "after_sales_ticket"
	TemplateRMAReturn        TemplateID = "rma_return"
	TemplateEscalation       TemplateID = "escalation"
	TemplateComplianceDocs   TemplateID = "compliance_docs"
	TemplateInfoToSend       TemplateID = "info_to_send"
	TemplateProjectRollout   TemplateID = "project_rollout"
	TemplateOnboarding       TemplateID = "onboarding"
	TemplateMeetingCustomer  TemplateID = "meeting_customer"
	TemplateMeetingInternal  TemplateID = "meeting_internal"
	TemplateBusinessTrip     TemplateID = "business_trip"
	TemplateOnsiteVisit      TemplateID = "onsite_visit"
	TemplateTradeShow        TemplateID = "trade_show"
	TemplateShipmentFollowup TemplateID = "shipment_followup"
	TemplatePaymentCollect   TemplateID = "payment_collection"
	TemplateFollowUp         TemplateID = "follow_up"
	TemplateTaskInternal     TemplateID = "task_internal"
)

// rule pairs a keyword predicate with the template it selects. A title
// matches when it contains any keyword from anyOf and, if alsoAny is set,
// any keyword from there too. Keywords match as plain substrings of the
// lower-cased title.
type rule struct {
	anyOf   []string
	alsoAny []string
	id      TemplateID
}

// Classifier infers checklist templates from work-item titles by evaluating
// an ordered rule list. Rule order is load-bearing: the first match wins, so
// e.g. "internal demo" resolves to meeting_internal before meeting_customer
// gets a chance.
type Classifier struct {
	rules    []rule
	fallback TemplateID
}

// NewClassifier returns the built-in title classifier.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []rule{
			{anyOf: []string{"trip", "travel", "flight", "hotel", "onsite", "on-site", "visit"}, id: TemplateBusinessTrip},
			{anyOf: []string{"trade show", "exhibition", "expo", "booth"}, id: TemplateTradeShow},
			{anyOf: []string{"meeting", "call", "demo", "workshop"}, alsoAny: []string{"internal", "team", "ops", "finance"}, id: TemplateMeetingInternal},
			{anyOf: []string{"meeting", "call", "demo", "workshop"}, id: TemplateMeetingCustomer},
			{anyOf: []string{"renewal", "extend", "extension"}, id: TemplateRenewal},
			{anyOf: []string{"negotiate", "negotiation", "counteroffer"}, id: TemplateNegotiation},
			{anyOf: []string{"quote", "quotation", "pricing", "price"}, id: TemplateQuoteStandard},
			{anyOf: []string{"rma", "return", "refund", "replace", "replacement"}, id: TemplateRMAReturn},
			{anyOf: []string{"escalation", "urgent", "critical"}, id: TemplateEscalation},
			{anyOf: []string{"ticket", "issue", "problem", "bug", "failure"}, id: TemplateAfterSalesTicket},
			{anyOf: []string{"compliance", "certificate", "coc", "msds", "rohs", "reach"}, id: TemplateComplianceDocs},
			{anyOf: []string{"document", "docs", "datasheet", "spec", "information"}, id: TemplateInfoToSend},
			{anyOf: []string{"rollout", "implementation", "onboarding", "go-live", "deploy"}, id: TemplateProjectRollout},
			{anyOf: []string{"shipment", "shipping", "awb", "tracking", "delivery"}, id: TemplateShipmentFollowup},
			{anyOf: []string{"payment", "invoice", "past due", "overdue", "collection"}, id: TemplatePaymentCollect},
			{anyOf: []string{"follow up", "follow-up"}, id: TemplateFollowUp},
		},
		fallback: TemplateTaskInternal,
	}
}

// Classify returns the template id for the given title. It never fails: a
// title matching no rule classifies as the fallback template.
func (c *Classifier) Classify(title string) TemplateID {
	t := strings.ToLower(title)
	for _, r := range c.rules {
		if !containsAny(t, r.anyOf) {
			continue
		}
		if len(r.alsoAny) > 0 && !containsAny(t, r.alsoAny) {
			continue
		}
		return r.id
	}
	return c.fallback
}

// Reachable lists every template id the classifier can return, fallback
// included, in rule order. Used to verify registry coverage at startup.
func (c *Classifier) Reachable() []TemplateID {
	seen := make(map[TemplateID]struct{}, len(c.rules)+1)
	ids := make([]TemplateID, 0, len(c.rules)+1)
	for _, r := range c.rules {
		if _, ok := seen[r.id]; ok {
			continue
		}
		seen[r.id] = struct{}{}
		ids = append(ids, r.id)
	}
	if _, ok := seen[c.fallback]; !ok {
		ids = append(ids, c.fallback)
	}
	return ids
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
