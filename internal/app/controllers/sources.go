package controllers

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/schooldash/internal/apiclient"
	"github.com/yigit/schooldash/internal/app/forms"
	"github.com/yigit/schooldash/internal/app/models"
	"github.com/yigit/schooldash/internal/app/resources"
)

type sourceLoader func(ctx context.Context, api *apiclient.Client) ([]forms.Option, error)

// Staff store department and designation by name, so those options use the name as value.
var sourceLoaders = map[string]sourceLoader{
	resources.SourceClasses: func(ctx context.Context, api *apiclient.Client) ([]forms.Option, error) {
		page, err := apiclient.For[models.Class](api, resources.Classes.APIPath).List(ctx, nil)
		if err != nil {
			return nil, err
		}
		opts := make([]forms.Option, 0, len(page.Items))
		for _, c := range page.Items {
			opts = append(opts, forms.Option{Value: c.ID, Label: c.Name})
		}
		return opts, nil
	},
	resources.SourceSections: func(ctx context.Context, api *apiclient.Client) ([]forms.Option, error) {
		page, err := apiclient.For[models.Section](api, resources.Sections.APIPath).List(ctx, nil)
		if err != nil {
			return nil, err
		}
		opts := make([]forms.Option, 0, len(page.Items))
		for _, s := range page.Items {
			opts = append(opts, forms.Option{Value: s.ID, Label: s.Name, Parent: s.ClassID})
		}
		return opts, nil
	},
	resources.SourceDepartments: func(ctx context.Context, api *apiclient.Client) ([]forms.Option, error) {
		page, err := apiclient.For[models.Department](api, resources.Departments.APIPath).List(ctx, nil)
		if err != nil {
			return nil, err
		}
		opts := make([]forms.Option, 0, len(page.Items))
		for _, d := range page.Items {
			opts = append(opts, forms.Option{Value: d.Name, Label: d.Name})
		}
		return opts, nil
	},
	resources.SourceDesignations: func(ctx context.Context, api *apiclient.Client) ([]forms.Option, error) {
		page, err := apiclient.For[models.Designation](api, resources.Designations.APIPath).List(ctx, nil)
		if err != nil {
			return nil, err
		}
		opts := make([]forms.Option, 0, len(page.Items))
		for _, d := range page.Items {
			opts = append(opts, forms.Option{Value: d.Title, Label: d.Title})
		}
		return opts, nil
	},
}

// loadSources fetches the named option sources concurrently and waits for all of them.
func loadSources(ctx context.Context, api *apiclient.Client, names []string) (forms.Sources, error) {
	src := make(forms.Sources, len(names))
	if len(names) == 0 {
		return src, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		load, ok := sourceLoaders[name]
		if !ok {
			return nil, fmt.Errorf("unknown option source %q", name)
		}
		g.Go(func() error {
			opts, err := load(gctx, api)
			if err != nil {
				return fmt.Errorf("load %s options: %w", name, err)
			}
			mu.Lock()
			src[name] = opts
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return src, nil
}
