package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shutterfolio/backend/internal/gallery"
	"github.com/shutterfolio/backend/internal/model"
)

const stripWidth = 72

type galleryView struct {
	a    *App
	root tview.Primitive

	carouselBox *tview.TextView
	filters     *tview.Form
	list        *tview.List
	detail      *tview.TextView
	strip       *tview.TextView

	items    []*model.PortfolioItem
	featured []*model.PortfolioItem
	shown    []*model.PortfolioItem
	reviews  []rune

	category model.Category
	query    string

	carousel *gallery.Carousel
	scroller *gallery.Scroller
	stop     context.CancelFunc
}

func newGalleryView(a *App) *galleryView {
	v := &galleryView{
		a:           a,
		carouselBox: tview.NewTextView().SetTextAlign(tview.AlignCenter),
		filters:     tview.NewForm().SetHorizontal(true),
		list:        tview.NewList().ShowSecondaryText(false),
		detail:      tview.NewTextView().SetDynamicColors(true).SetWrap(true),
		strip:       tview.NewTextView(),
		category:    model.CategoryAll,
	}

	categories := gallery.Categories()
	options := make([]string, len(categories))
	for i, c := range categories {
		options[i] = c.String()
	}
	v.filters.
		AddDropDown("Category", options, 0, func(option string, _ int) {
			v.category = model.Category(option)
			v.applyFilter()
		}).
		AddInputField("Search", "", 30, nil, func(text string) {
			v.query = text
			v.applyFilter()
		})

	v.carouselBox.SetBorder(true).SetTitle(" Featured ")
	v.carouselBox.SetFocusFunc(func() {
		if v.carousel != nil {
			v.carousel.Pause()
		}
	})
	v.carouselBox.SetBlurFunc(func() {
		if v.carousel != nil {
			v.carousel.Resume()
		}
	})
	v.carouselBox.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if v.carousel == nil {
			return event
		}
		switch event.Key() {
		case tcell.KeyLeft:
			v.carousel.Prev()
			return nil
		case tcell.KeyRight:
			v.carousel.Next()
			return nil
		}
		return event
	})

	v.strip.SetBorder(true).SetTitle(" What clients say ")
	v.strip.SetFocusFunc(func() {
		if v.scroller != nil {
			v.scroller.Pause()
		}
	})
	v.strip.SetBlurFunc(func() {
		if v.scroller != nil {
			v.scroller.Resume()
		}
	})

	v.list.SetBorder(true).SetTitle(" Gallery ")
	v.detail.SetBorder(true)
	v.list.SetChangedFunc(func(i int, _, _ string, _ rune) { v.showDetail(i) })

	body := tview.NewFlex().
		AddItem(v.list, 0, 1, true).
		AddItem(v.detail, 0, 2, false)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.carouselBox, 3, 0, false).
		AddItem(v.filters, 3, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(v.strip, 3, 0, false).
		AddItem(tview.NewTextView().SetText("Tab cycle  ←/→ carousel  Esc back  c contact  q quit"), 1, 0, false)

	v.root.(*tview.Flex).SetInputCapture(v.cycleFocus)
	return v
}

// cycleFocus moves Tab between the carousel, the filters, the list and the
// testimonial strip.
func (v *galleryView) cycleFocus(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyTab || v.filters.HasFocus() {
		return event
	}
	switch {
	case v.carouselBox.HasFocus():
		v.a.app.SetFocus(v.filters)
	case v.list.HasFocus():
		v.a.app.SetFocus(v.strip)
	case v.strip.HasFocus():
		v.a.app.SetFocus(v.carouselBox)
	default:
		v.a.app.SetFocus(v.list)
	}
	return nil
}

func (v *galleryView) focus() {
	v.a.app.SetFocus(v.list)
}

// open shows the gallery page and (re)loads its content. The carousel and
// scroller stop when the studio exits or the gallery is reopened.
func (v *galleryView) open() {
	if v.stop != nil {
		v.stop()
	}
	ctx, cancel := context.WithCancel(v.a.ctx)
	v.stop = cancel

	v.carouselBox.SetText("Loading…")
	v.list.Clear()
	v.detail.SetText("")
	v.strip.SetText("")
	v.a.switchTo(pageGallery)

	go func() {
		items := gallery.LoadGallery(ctx, v.a.source)
		featured := gallery.LoadFeatured(ctx, v.a.source)
		reviews := gallery.LoadReviews(ctx, v.a.source)
		if ctx.Err() != nil {
			return
		}

		strip := reviewStrip(reviews)
		carousel := gallery.NewCarousel(len(featured), gallery.OnSlideChange(func(idx int) {
			v.a.app.QueueUpdateDraw(func() { v.carouselBox.SetText(carouselLine(featured, idx)) })
		}))
		scroller := gallery.NewScroller(len(strip), stripWidth, nil, func(pos int) {
			v.a.app.QueueUpdateDraw(func() { v.strip.SetText(window(strip, pos, stripWidth)) })
		})

		v.a.app.QueueUpdateDraw(func() {
			v.items, v.featured, v.reviews = items, featured, strip
			v.carousel, v.scroller = carousel, scroller
			v.carouselBox.SetText(carouselLine(featured, 0))
			v.strip.SetText(window(strip, 0, stripWidth))
			v.applyFilter()
		})

		go carousel.Run(ctx)
		go scroller.Run(ctx)
	}()
}

// applyFilter re-renders the list from the loaded items. Call on the UI
// goroutine.
func (v *galleryView) applyFilter() {
	v.shown = gallery.Filter(v.items, v.category, v.query)
	v.list.Clear()
	for _, it := range v.shown {
		v.list.AddItem(tview.Escape(itemTitle(it)), "", 0, nil)
	}
	v.list.SetTitle(fmt.Sprintf(" Gallery (%d) ", len(v.shown)))
	if len(v.shown) == 0 {
		v.detail.SetText(NoImagesText)
		return
	}
	v.showDetail(v.list.GetCurrentItem())
}

func (v *galleryView) showDetail(i int) {
	if i >= 0 && i < len(v.shown) {
		v.detail.SetText(itemDetail(v.shown[i]))
	}
}
