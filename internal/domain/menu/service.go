package menu

import (
	"context"
	"fmt"

	"PosBridge/pkg/logger"
)

// DefaultLanguage is used when the caller does not ask for one.
const DefaultLanguage = "en_US"

// MenuRepo is the persistence surface for menu browsing.
type MenuRepo interface {
	GetCategory(ctx context.Context, id int64) (*Category, error)
	// ListCategories returns categories whose parent is parentID; nil means
	// top-level categories of the config.
	ListCategories(ctx context.Context, configID int64, parentID *int64) ([]Category, error)
	ListProducts(ctx context.Context, categoryID int64) ([]Product, error)
	ListLanguages(ctx context.Context) ([]Language, error)
	// HasChildren reports whether any category has the given category as
	// its parent.
	HasChildren(ctx context.Context, categoryID int64) (bool, error)
}

// CategoryView is one category entry at the requested level.
type CategoryView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	HasMore  bool   `json:"has_more"`
	ImageURL string `json:"image_url,omitempty"`
}

// ProductView is one product entry of the drilled-into category.
type ProductView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PriceIncl   float64 `json:"price_incl"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Level is one browse step of the menu tree: the categories of the level
// and, when drilling into a category, its products. Language echoes the
// requested display language.
type Level struct {
	Language     string         `json:"language"`
	CategoryName string         `json:"category_name,omitempty"`
	Categories   []CategoryView `json:"categories"`
	Products     []ProductView  `json:"products"`
}

// LanguageView is one entry of the language list endpoint.
type LanguageView struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	FlagIcon string `json:"flag_icon,omitempty"`
}

// MenuService serves the public menu-browse API.
type MenuService struct {
	repo   MenuRepo
	logger *logger.Logger
}

func NewMenuService(repo MenuRepo, l *logger.Logger) *MenuService {
	return &MenuService{repo: repo, logger: l}
}

// Level returns one level of the menu tree. With categoryID nil it returns
// the top-level categories; with a category it returns that category's
// subcategories and products. lang selects the display language and is
// echoed back in the response.
func (s *MenuService) Level(ctx context.Context, configID int64, categoryID *int64, lang string) (Level, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	level := Level{Language: lang, Categories: []CategoryView{}, Products: []ProductView{}}

	if categoryID != nil {
		current, err := s.repo.GetCategory(ctx, *categoryID)
		if err != nil {
			return Level{}, fmt.Errorf("load category %d: %w", *categoryID, err)
		}
		if current != nil {
			level.CategoryName = current.Name
		}
	}

	categories, err := s.repo.ListCategories(ctx, configID, categoryID)
	if err != nil {
		return Level{}, fmt.Errorf("list categories: %w", err)
	}

	for _, c := range categories {
		hasMore, err := s.repo.HasChildren(ctx, c.ID)
		if err != nil {
			return Level{}, fmt.Errorf("check children of category %d: %w", c.ID, err)
		}

		view := CategoryView{ID: c.ID, Name: c.Name, HasMore: hasMore}
		if c.HasImage {
			view.ImageURL = CategoryImageURL(c.ID)
		}
		level.Categories = append(level.Categories, view)
	}

	if categoryID != nil {
		products, err := s.repo.ListProducts(ctx, *categoryID)
		if err != nil {
			return Level{}, fmt.Errorf("list products of category %d: %w", *categoryID, err)
		}

		for _, p := range products {
			view := ProductView{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price.InexactFloat64(),
				PriceIncl:   p.PriceIncl.InexactFloat64(),
				Description: p.Description,
			}
			if p.HasImage {
				view.ImageURL = ProductImageURL(p.ID)
			}
			level.Products = append(level.Products, view)
		}
	}

	return level, nil
}

// Languages returns the languages available for menu display.
func (s *MenuService) Languages(ctx context.Context) ([]LanguageView, error) {
	languages, err := s.repo.ListLanguages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	views := make([]LanguageView, 0, len(languages))
	for _, l := range languages {
		views = append(views, LanguageView{Code: l.Code, Name: l.Name, FlagIcon: l.FlagURL})
	}

	return views, nil
}
