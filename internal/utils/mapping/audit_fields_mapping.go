package mapping

import (
	"github.com/SscSPs/ledger_reconciler/internal/core/domain"
	"github.com/SscSPs/ledger_reconciler/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt.UTC(),
		LastUpdatedAt: d.LastUpdatedAt.UTC(),
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt.UTC(),
		LastUpdatedAt: m.LastUpdatedAt.UTC(),
	}
}
