package content

import "github.com/pr-poehali-dev/loft-massage-site/internal/domain"

// Catalog is the static marketing content: the service list the booking
// wizard offers, the gallery and certificate images, and the contact card.
// It never changes at runtime.
type Catalog struct {
	services     []domain.Service
	gallery      []string
	certificates []string
	contacts     Contacts
}

type Contacts struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   []string `json:"hours"`
}

func Default() *Catalog {
	return &Catalog{
		services: []domain.Service{
			{
				Title:       "Классический массаж спина",
				Description: "Этот массаж позволит вам почувствовать легкость в теле и избавит вас от скованности в движениях. Отлично подходит тем кто усердно работает над собой или очень устает на работе. Подарит легкий заряд бодрости и наполняет вас силой",
				Icon:        "Hand",
				Prices:      []domain.ServicePrice{{Duration: "30 минут", Price: "1600₽"}},
			},
			{
				Title:       "Успокаивающий массаж спина",
				Description: "Этот массаж создан специально для тех, кто нуждается в эмоциональной разгрузке. Мягкие, плавные движения помогут вам расслабиться, снять стресс и восстановить внутреннюю гармонию. Идеален после напряженного дня",
				Icon:        "Sparkles",
				Prices:      []domain.ServicePrice{{Duration: "30 минут", Price: "1600₽"}},
			},
			{
				Title:       "Классический массаж тело",
				Description: "Комплексная проработка всего тела. Улучшает кровообращение, снимает мышечное напряжение и дарит чувство обновления. Вы почувствуете как каждая клеточка вашего тела наполняется энергией и жизненной силой",
				Icon:        "User",
				Prices:      []domain.ServicePrice{{Duration: "60 минут", Price: "2600₽"}},
			},
			{
				Title:       "Расслабляющий массаж тела",
				Description: "Массаж позволяющий вам собраться с мыслями, отпустить все ваши тревоги и заботы. Отдохните телом и душой пока руки мастера творят свое волшебство",
				Icon:        "Heart",
				Prices:      []domain.ServicePrice{{Duration: "60 минут", Price: "2600₽"}},
			},
		},
		gallery: []string{
			"https://cdn.poehali.dev/files/e1832efa-4a2d-41cb-b464-51b3e1d6974b.jpeg",
			"https://cdn.poehali.dev/files/ca89434b-6670-4b10-9942-f9b1f36a7f7a.jpeg",
			"https://cdn.poehali.dev/files/73991933-3d6d-476a-be3e-da7f0c43bc38.jpeg",
			"https://cdn.poehali.dev/files/66350afb-c5f2-4d92-b705-7bdc846b7714.jpeg",
			"https://cdn.poehali.dev/files/bfabeb17-fe5a-4a57-8306-df33558f9ec1.jpeg",
		},
		certificates: []string{
			"https://cdn.poehali.dev/files/bfabeb17-fe5a-4a57-8306-df33558f9ec1.jpeg",
		},
		contacts: Contacts{
			Address: "Будет указан при записи",
			Phone:   "+7 (XXX) XXX-XX-XX",
			Hours: []string{
				"Пн, Ср, Пт: 11:00 - 14:00 и 17:00 - 20:00",
				"Сб, Вс: 9:00 - 20:00",
			},
		},
	}
}

func (c *Catalog) Services() []domain.Service {
	return c.services
}

// ServiceByTitle looks a service up by its title, the key bookings store.
func (c *Catalog) ServiceByTitle(title string) (*domain.Service, bool) {
	for i := range c.services {
		if c.services[i].Title == title {
			return &c.services[i], true
		}
	}
	return nil, false
}

func (c *Catalog) Gallery() []string {
	return c.gallery
}

func (c *Catalog) Certificates() []string {
	return c.certificates
}

func (c *Catalog) Contacts() Contacts {
	return c.contacts
}
