package handlers

import (
	"html/template"
	"net/http"
)

// Minimal server-rendered views. The real page design lives outside this
// service; these templates only expose the data each route renders.
var viewTemplates = template.Must(template.New("views").Parse(`
{{define "index"}}<!DOCTYPE html>
<html><head><title>Home</title></head><body>
<h1>Products</h1>
<ul>{{range .Products}}<li>{{.Title}} - ${{.Price}}</li>{{end}}</ul>
</body></html>{{end}}

{{define "products"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<p>{{.UserName}}</p><p>{{.UserRol}}</p>
<ul>{{range .Products}}<li>{{.Title}} ({{.Code}}) - ${{.Price}}</li>{{end}}</ul>
<nav>page {{.Page.Page}} of {{.Page.TotalPages}}
{{if .Page.HasPrevPage}}<a href="/products?page={{.Page.PrevPage}}">prev</a>{{end}}
{{if .Page.HasNextPage}}<a href="/products?page={{.Page.NextPage}}">next</a>{{end}}</nav>
</body></html>{{end}}

{{define "users"}}<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head><body>
<ul>{{range .Users}}<li>{{.FirstName}} ({{.Email}}) - {{.Rol}}</li>{{end}}</ul>
<nav>{{range .Pages}}<a href="/users?page={{.}}">{{.}}</a> {{end}}</nav>
</body></html>{{end}}

{{define "cookies"}}<!DOCTYPE html>
<html><head><title>Cookies</title></head><body><h1>Cookies</h1></body></html>{{end}}

{{define "login"}}<!DOCTYPE html>
<html><head><title>Login</title></head><body>
<form method="post" action="/api/sessions/login">
<input name="email" type="email"><input name="password" type="password">
<button type="submit">Login</button></form>
</body></html>{{end}}

{{define "register"}}<!DOCTYPE html>
<html><head><title>Register</title></head><body>
<form method="post" action="/api/sessions/register">
<input name="first_name"><input name="email" type="email"><input name="password" type="password">
<button type="submit">Register</button></form>
</body></html>{{end}}

{{define "profile"}}<!DOCTYPE html>
<html><head><title>Profile</title></head><body>
<p>{{.UserName}}</p><p>{{.UserRol}}</p>
</body></html>{{end}}

{{define "chat"}}<!DOCTYPE html>
<html><head><title>Chat</title></head><body>
<ul id="messages">{{range .Messages}}<li>{{.User}}: {{.Message}}</li>{{end}}</ul>
</body></html>{{end}}

{{define "realTimeProducts"}}<!DOCTYPE html>
<html><head><title>Real Time Products</title></head><body>
<ul id="products">{{range .Products}}<li>{{.Title}} - ${{.Price}}</li>{{end}}</ul>
</body></html>{{end}}
`))

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viewTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.Log.WithError(err).WithField("view", name).Error("template render failed")
	}
}
