package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/types"
)

const siteCountKey = "Site.Cnt"

// SiteLayout describes how the site list of one carrier family is stored.
type SiteLayout struct {
	// CountMarker is the byte between Site.Cnt and the count value.
	CountMarker string
	// FilterVisible drops sites whose Visible flag is not 1.
	FilterVisible bool
}

var (
	StandardSiteLayout = SiteLayout{CountMarker: "\x01"}
	FlexSiteLayout     = SiteLayout{CountMarker: "\x02", FilterVisible: true}
)

// SiteCount reads the number of sites stored after the Site.Cnt marker.
func SiteCount(rec Record, layout SiteLayout) (int, error) {
	marker := siteCountKey + layout.CountMarker
	_, after, ok := strings.Cut(rec.Text(), marker)
	if !ok {
		return 0, keyNotFound(siteCountKey)
	}
	// The count runs to the next control byte, normally the length prefix
	// of "Site.1.X".
	end := strings.IndexFunc(after, func(r rune) bool { return r < 0x20 })
	if end < 0 {
		end = len(after)
	}
	value := after[:end]
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalidValue("integer", siteCountKey, value, err)
	}
	if count < 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("negative site count %d", count))
	}
	return count, nil
}

// ExtractSites reads every site of a carrier and orders them by ascending y,
// top to bottom on the deck, regardless of their source index. With
// FilterVisible set, sites are filtered after sorting using the Visible flag
// of their own source index.
func ExtractSites(rec Record, layout SiteLayout) ([]types.SiteRecord, error) {
	count, err := SiteCount(rec, layout)
	if err != nil {
		return nil, err
	}
	sites := make([]types.SiteRecord, 0, count)
	for i := 1; i <= count; i++ {
		site, err := readSite(rec, i, layout.FilterVisible)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].Location.Y < sites[j].Location.Y
	})
	if !layout.FilterVisible {
		return sites, nil
	}
	visible := sites[:0]
	for _, site := range sites {
		if site.Visible {
			visible = append(visible, site)
		}
	}
	return visible, nil
}

func readSite(rec Record, index int, readVisible bool) (types.SiteRecord, error) {
	field := func(name string) (float64, error) {
		return rec.Float(fmt.Sprintf("Site.%d.%s", index, name))
	}
	site := types.SiteRecord{Index: index, Visible: true}
	var err error
	if site.Location.X, err = field("X"); err != nil {
		return types.SiteRecord{}, err
	}
	if site.Location.Y, err = field("Y"); err != nil {
		return types.SiteRecord{}, err
	}
	if site.Location.Z, err = field("Z"); err != nil {
		return types.SiteRecord{}, err
	}
	if site.Width, err = field("Dx"); err != nil {
		return types.SiteRecord{}, err
	}
	if site.Height, err = field("Dy"); err != nil {
		return types.SiteRecord{}, err
	}
	if readVisible {
		flag, err := rec.Int(fmt.Sprintf("Site.%d.Visible", index))
		if err != nil {
			return types.SiteRecord{}, err
		}
		site.Visible = flag == 1
	}
	return site, nil
}
