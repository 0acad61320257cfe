package ports

import "github.com/pr-poehali-dev/loft-massage-site/internal/domain"

type ServiceCatalog interface {
	Services() []domain.Service
	ServiceByTitle(title string) (*domain.Service, bool)
}
