package mustache

import (
	"context"
	"path/filepath"
	"testing"
)

func benchViews(b *testing.B) string {
	b.Helper()

	return writeFiles(b, map[string]string{
		"page.html": "<h1>{{title}}</h1><ul>{{#users}}{{> user}}{{/users}}</ul>" +
			"{{^empty}}<p>{{footer}}</p>{{/empty}}",
		"user.html": "<li>{{name}} ({{role}})</li>",
	})
}

func benchModel() Model {
	users := make(Array, 0, 20)
	for range 20 {
		users = append(users, Model{"name": String("Ada"), "role": String("admin")})
	}

	return Model{
		"title":  String("Users"),
		"users":  users,
		"empty":  Bool(false),
		"footer": String("end"),
	}
}

func benchmarkRender(b *testing.B, opts ...Option) {
	path := filepath.Join(benchViews(b), "page.html")
	engine := New(opts...)
	model := benchModel()
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Render(ctx, path, model); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRender_Cached measures renders served from the tree cache.
func BenchmarkRender_Cached(b *testing.B) {
	benchmarkRender(b)
}

// BenchmarkRender_Uncached measures renders that read and parse every file.
func BenchmarkRender_Uncached(b *testing.B) {
	benchmarkRender(b, WithFileCache(false))
}

// BenchmarkRender_CachedParallel measures concurrent renders sharing a cache.
func BenchmarkRender_CachedParallel(b *testing.B) {
	path := filepath.Join(benchViews(b), "page.html")
	engine := New()
	model := benchModel()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := engine.Render(context.Background(), path, model); err != nil {
				b.Error(err)

				return
			}
		}
	})
}

// BenchmarkParse measures tokenizing and building a tree.
func BenchmarkParse(b *testing.B) {
	text := "<h1>{{title}}</h1><ul>{{#users}}{{> user}}{{/users}}</ul>{{! note }}" +
		"{{^empty}}<p>{{footer}}</p>{{/empty}}"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCache_Load measures cache hits.
func BenchmarkCache_Load(b *testing.B) {
	cache := NewCache()
	cache.LoadOrStore("/views/page.html", &Node{Kind: KindSection, Value: RootValue})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := cache.Load("/views/page.html"); !ok {
			b.Fatal("cache miss")
		}
	}
}
