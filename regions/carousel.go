package regions

import (
	"encoding/json"
	"errors"

	"github.com/eringen/pagewire/dom"
)

// SelCarouselLibrary matches the script tag that loads the carousel library.
const SelCarouselLibrary = `script[src*="swiper"]`

// ErrCarouselLibraryMissing is returned when the mount point exists but the
// page does not load the library.
var ErrCarouselLibraryMissing = errors.New("regions: carousel library not loaded")

// CarouselOptions is passed through to the carousel library unchanged.
type CarouselOptions struct {
	SlidesPerView int                        `json:"slidesPerView"`
	SpaceBetween  int                        `json:"spaceBetween"`
	Loop          bool                       `json:"loop"`
	GrabCursor    bool                       `json:"grabCursor"`
	Pagination    CarouselPagination         `json:"pagination"`
	Navigation    CarouselNavigation         `json:"navigation"`
	Breakpoints   map[int]CarouselBreakpoint `json:"breakpoints"`
}

type CarouselPagination struct {
	El        string `json:"el"`
	Clickable bool   `json:"clickable"`
}

type CarouselNavigation struct {
	NextEl string `json:"nextEl"`
	PrevEl string `json:"prevEl"`
}

type CarouselBreakpoint struct {
	SlidesPerView int `json:"slidesPerView"`
	SpaceBetween  int `json:"spaceBetween"`
}

// DefaultCarouselOptions is the stock slider configuration.
func DefaultCarouselOptions() CarouselOptions {
	return CarouselOptions{
		SlidesPerView: 1,
		SpaceBetween:  24,
		Loop:          true,
		GrabCursor:    true,
		Pagination:    CarouselPagination{El: ".swiper-pagination", Clickable: true},
		Navigation:    CarouselNavigation{NextEl: ".swiper-button-next", PrevEl: ".swiper-button-prev"},
		Breakpoints: map[int]CarouselBreakpoint{
			640:  {SlidesPerView: 2, SpaceBetween: 20},
			768:  {SlidesPerView: 2, SpaceBetween: 30},
			1024: {SlidesPerView: 3, SpaceBetween: 40},
		},
	}
}

// InitCarousel hands opts to the carousel library by attaching them to the
// mount point. It reports false with a nil error when the page has no mount
// point, and ErrCarouselLibraryMissing when the library is absent.
func InitCarousel(doc *dom.Document, opts CarouselOptions) (bool, error) {
	mount := doc.Query(SelCarousel)
	if mount == nil {
		return false, nil
	}
	if !doc.Exists(SelCarouselLibrary) {
		return false, ErrCarouselLibraryMissing
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return false, err
	}
	dom.SetAttr(mount, "data-carousel", SelCarousel)
	dom.SetAttr(mount, "data-carousel-options", string(raw))
	return true, nil
}
