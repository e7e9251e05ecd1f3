package enrichment

import (
	"context"
	"log"

	"github.com/jonathan/prospect-researcher/internal/fetch"
	"github.com/jonathan/prospect-researcher/internal/providers"
	"github.com/jonathan/prospect-researcher/internal/types"
)

// Contact caps. Only verified emails survive into the final list.
const (
	maxContactsTotal      = 6
	maxContactsPerPersona = 2
	searchPerPage         = 3
)

// ContactFinder drives the people-search provider per persona and verifies
// emails.
type ContactFinder struct {
	people providers.PeopleSearcher
}

// NewContactFinder creates a contact finder.
func NewContactFinder(people providers.PeopleSearcher) *ContactFinder {
	return &ContactFinder{people: people}
}

// Find searches contacts for each persona in order, sequentially: the
// people-search provider may have caller-side rate limits. A persona-level
// failure is logged and skipped so partial results are preserved; only
// verified contacts are returned, capped at six.
func (f *ContactFinder) Find(ctx context.Context, companyURL string, personas []types.Persona) []types.Contact {
	domain := fetch.ExtractDomain(companyURL)
	var contacts []types.Contact

	for _, persona := range personas {
		titles := MapPersonaToSearchTitles(persona.Persona)

		people, err := f.people.SearchPeople(ctx, providers.PeopleQuery{
			Domain:  domain,
			Titles:  titles,
			Page:    1,
			PerPage: searchPerPage,
		})
		if err != nil {
			log.Printf("Error finding contacts for persona %q: %v", persona.Persona, err)
			continue
		}

		if len(people) > maxContactsPerPersona {
			people = people[:maxContactsPerPersona]
		}
		for _, person := range people {
			if person.Email == "" {
				continue
			}

			verified := f.people.VerifyEmail(ctx, person.Email)

			phone := ""
			if len(person.PhoneNumbers) > 0 {
				phone = person.PhoneNumbers[0]
			}

			contacts = append(contacts, types.Contact{
				Name:          person.Name,
				Title:         person.Title,
				LinkedInURL:   person.LinkedInURL,
				Email:         person.Email,
				EmailVerified: verified,
				Phone:         phone,
			})
		}
	}

	verified := make([]types.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.EmailVerified {
			verified = append(verified, c)
		}
	}
	if len(verified) > maxContactsTotal {
		verified = verified[:maxContactsTotal]
	}
	return verified
}
