package newsportal

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/news-management/internal/db"
	"github.com/daniilsolovey/news-management/internal/guard"
)

// SeedResult reports how many records Seed created.
type SeedResult struct {
	Accounts     int
	Categories   int
	Tags         int
	NewsArticles int
}

type seedAccount struct {
	name, email, password string
	role                  Role
}

type seedCategory struct {
	name, description, parent string
}

type seedTag struct {
	name, note string
}

type seedArticle struct {
	title, headline, content, source, category string
	tags                                       []string
}

var (
	seedAccounts = []seedAccount{
		{"System Admin", "admin@funews.edu.vn", "Admin123!", RoleAdmin},
		{"News Staff", "staff@funews.edu.vn", "Staff123!", RoleStaff},
		{"John Lecturer", "john.lecturer@funews.edu.vn", "Lecturer123!", RoleLecturer},
		{"Jane Staff", "jane.staff@funews.edu.vn", "Staff123!", RoleStaff},
		{"Dr. Smith", "dr.smith@funews.edu.vn", "Lecturer123!", RoleLecturer},
	}

	// Parents come before their subcategories.
	seedCategories = []seedCategory{
		{"Academic", "Academic related news and announcements", ""},
		{"Student Life", "Student activities and campus life", ""},
		{"Research", "Research activities and publications", ""},
		{"Sports", "Sports events and achievements", ""},
		{"Technology", "Technology and innovation news", ""},
		{"Curriculum Updates", "Updates to academic curriculum", "Academic"},
		{"Faculty News", "Faculty appointments and achievements", "Academic"},
		{"Student Events", "Upcoming student events", "Student Life"},
		{"Club Activities", "Student club activities and news", "Student Life"},
	}

	seedTags = []seedTag{
		{"announcement", "General announcements"},
		{"deadline", "Important deadlines"},
		{"event", "Upcoming events"},
		{"scholarship", "Scholarship opportunities"},
		{"graduation", "Graduation related news"},
		{"exam", "Examination related"},
		{"research", "Research related content"},
		{"innovation", "Innovation and technology"},
		{"competition", "Competitions and contests"},
		{"international", "International programs and exchanges"},
	}

	seedArticles = []seedArticle{
		{
			title:    "New Academic Year Registration Opens",
			headline: "Students can now register for the upcoming academic year",
			content:  "The registration portal for the new academic year is now open. Students are encouraged to complete their course registration by the specified deadline to ensure their preferred class schedules.",
			source:   "Academic Office", category: "Academic", tags: []string{"announcement", "deadline"},
		},
		{
			title:    "Research Excellence Awards 2024",
			headline: "Faculty members recognized for outstanding research contributions",
			content:  "The university proudly announces the recipients of this year's Research Excellence Awards. These faculty members have demonstrated exceptional dedication to advancing knowledge in their respective fields.",
			source:   "Research Office", category: "Research", tags: []string{"research", "announcement"},
		},
		{
			title:    "Student Tech Competition Winners",
			headline: "Computer Science students win national coding competition",
			content:  "Our Computer Science students have achieved remarkable success in the national coding competition, showcasing their programming skills and innovative thinking.",
			source:   "CS Department", category: "Technology", tags: []string{"competition", "innovation"},
		},
		{
			title:    "International Exchange Program",
			headline: "New partnership with European universities announced",
			content:  "The university is excited to announce new partnership agreements with several prestigious European universities, opening new opportunities for student and faculty exchanges.",
			source:   "International Office", category: "Academic", tags: []string{"international", "announcement"},
		},
		{
			title:    "Campus Sports Day 2024",
			headline: "Annual sports day promises exciting competitions",
			content:  "The annual campus sports day is scheduled for next month, featuring various competitive sports and recreational activities for students and staff.",
			source:   "Sports Committee", category: "Sports", tags: []string{"event", "competition"},
		},
	}
)

// Seed fills an empty database with demo accounts, categories, tags and
// articles in one transaction. It fails with a conflict if any account,
// category or tag already exists.
func (m *Manager) Seed(ctx context.Context) (res *SeedResult, err error) {
	m.logger.Info("seeding database")
	defer func() { m.done("system", "seed", 0, err) }()

	hashes := make([]string, len(seedAccounts))
	for i, a := range seedAccounts {
		if hashes[i], err = hashPassword(a.password); err != nil {
			return nil, err
		}
	}

	err = m.mutate(ctx, func(s db.Store, snap *snapshot) error {
		if len(snap.accounts) > 0 || len(snap.categories) > 0 || len(snap.tags) > 0 {
			return guard.Conflict("system", guard.ReasonDuplicate, "database already contains data, seeding skipped")
		}

		res = &SeedResult{}
		accountIDs := make([]int, len(seedAccounts))
		for i, a := range seedAccounts {
			row := db.Account{Name: a.name, Email: a.email, Role: int(a.role), Password: hashes[i]}
			if err := s.CreateAccount(ctx, &row); err != nil {
				return err
			}
			accountIDs[i] = row.ID
			res.Accounts++
		}

		categoryIDs := make(map[string]int, len(seedCategories))
		for _, c := range seedCategories {
			row := db.Category{Name: c.name, Description: &c.description, IsActive: true}
			if c.parent != "" {
				parentID := categoryIDs[c.parent]
				row.ParentID = &parentID
			}
			if err := s.CreateCategory(ctx, &row); err != nil {
				return err
			}
			categoryIDs[c.name] = row.ID
			res.Categories++
		}

		tagIDs := make(map[string]int, len(seedTags))
		for _, t := range seedTags {
			row := db.Tag{Name: t.name, Note: &t.note}
			if err := s.CreateTag(ctx, &row); err != nil {
				return err
			}
			tagIDs[t.name] = row.ID
			res.Tags++
		}

		now := m.now().UTC()
		for i, a := range seedArticles {
			row := db.NewsArticle{
				Title:       a.title,
				Headline:    &a.headline,
				Content:     a.content,
				Source:      &a.source,
				CategoryID:  categoryIDs[a.category],
				Status:      true,
				CreatedByID: accountIDs[i%len(accountIDs)],
				CreatedDate: now.Add(-time.Duration(i+1) * 24 * time.Hour),
			}
			if err := s.CreateNewsArticle(ctx, &row); err != nil {
				return err
			}

			ids := make([]int, len(a.tags))
			for j, name := range a.tags {
				ids[j] = tagIDs[name]
			}
			if err := s.SetNewsTags(ctx, row.ID, uniqueInts(ids)); err != nil {
				return err
			}
			res.NewsArticles++
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	m.logger.Info("database seeded", "accounts", res.Accounts, "categories", res.Categories,
		"tags", res.Tags, "newsArticles", res.NewsArticles)

	return res, nil
}
