package edition

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/wikireader/pkg/integrations/commons"
	"github.com/matzehuels/wikireader/pkg/wiki"
)

// ImageLibrary is the two-call image API behind the picture of the day.
// *commons.Client satisfies it.
type ImageLibrary interface {
	TemplateImages(ctx context.Context, page string) ([]string, error)
	ImageInfo(ctx context.Context, titles []string, width int) ([]commons.Image, error)
}

// PotdTemplate returns the Commons page listing a month's pictures.
func PotdTemplate(month, year int) string {
	return fmt.Sprintf("Template:Potd/%d-%s", year, wiki.PaddedMonth(month))
}

// PictureOfTheDay resolves the month's featured images in random order.
// An empty template short-circuits without the image-info call.
func PictureOfTheDay(ctx context.Context, lib ImageLibrary, month, year, width int, rng *rand.Rand) ([]PotdImage, error) {
	titles, err := lib.TemplateImages(ctx, PotdTemplate(month, year))
	if err != nil || len(titles) == 0 {
		return []PotdImage{}, err
	}

	infos, err := lib.ImageInfo(ctx, titles, width)
	if err != nil {
		return []PotdImage{}, err
	}

	images := make([]PotdImage, 0, len(infos))
	for _, info := range infos {
		src := info.ThumbURL
		if src == "" {
			src = info.URL
		}
		images = append(images, PotdImage{
			Title: info.Title,
			Image: src,
			URL:   commons.FileURL(info.Title),
		})
	}
	rng.Shuffle(len(images), func(i, j int) { images[i], images[j] = images[j], images[i] })
	return images, nil
}
