// Package view hosts templates behind logical view names.
//
// A [Service] resolves a view name such as "users/list" to the first file
// users/list.html found along its views search path, renders it with a
// [mustache.Engine], and writes the result as a text/html HTTP response.
// The search path is a list of directories separated by
// [os.PathListSeparator]; directories listed in the STACHE_VIEWS environment
// variable are searched first.
//
//	svc := view.New(view.WithViewsPath("./views"))
//	http.Handle("/", svc.Router(func(r *http.Request, name string) (mustache.Model, error) {
//		return mustache.Model{"path": mustache.String(r.URL.Path)}, nil
//	}))
//
// [Service.Watch] keeps cached parse trees in step with edits on disk.
package view
