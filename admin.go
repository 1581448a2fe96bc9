package darkframe

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// renderAdmin picks the admin page for the current state: first-time
// password setup while no password exists, the login form while logged out,
// otherwise the dashboard.
func (a *App) renderAdmin(c echo.Context, msg string) error {
	if msg == "" {
		msg = c.QueryParam("msg")
	}
	if a.Store.AdminPassword() == "" {
		return Render(c, a.Views.AdminSetup(msg, CsrfToken(c)))
	}
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(msg, CsrfToken(c)))
	}
	return Render(c, a.Views.AdminDashboard(msg, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	if a.Store.AdminPassword() == "" {
		// Login is blocked entirely until a password has been configured.
		return Render(c, a.Views.AdminSetup("Set a password before logging in.", CsrfToken(c)))
	}
	user := strings.TrimSpace(c.FormValue("username"))
	pass := c.FormValue("password")
	userOK := user == AdminUser
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.Store.AdminPassword())) == 1
	if userOK && passOK {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, a.Views.AdminLogin("Invalid credentials", CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// handleAdminSetPassword serves both first-time setup (reachable logged out,
// since no login can succeed yet) and rotation from the dashboard. Either
// way the candidate must pass the passphrase gate.
func (a *App) handleAdminSetPassword(c echo.Context) error {
	firstTime := a.Store.AdminPassword() == ""
	if !firstTime && !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	candidate := c.FormValue("password")
	if err := a.Store.SetAdminPassword(candidate); err != nil {
		msg := "New password must be an anagram of: " + Passphrase
		if firstTime {
			return Render(c, a.Views.AdminSetup(msg, CsrfToken(c)))
		}
		return Render(c, a.Views.AdminDashboard(msg, CsrfToken(c)))
	}
	if firstTime {
		return Render(c, a.Views.AdminLogin("Password set. Log in to continue.", CsrfToken(c)))
	}
	return Render(c, a.Views.AdminDashboard("Password updated (valid anagram).", CsrfToken(c)))
}

func (a *App) handleAdminAddPicture(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	url := c.FormValue("url")
	description := c.FormValue("description")
	tags := strings.Split(c.FormValue("tags"), ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}
	pic, err := a.Store.CreatePicture(url, description, tags)
	if err != nil {
		return Render(c, a.Views.AdminDashboard("Image URL is required.", CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/pic/"+pic.ID)
}

func (a *App) handleAdminAddPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	title := c.FormValue("title")
	image := c.FormValue("image")
	body := c.FormValue("body")
	post, err := a.Store.CreatePost(title, image, body)
	if err != nil {
		return Render(c, a.Views.AdminDashboard("Title and image URL are required.", CsrfToken(c)))
	}
	return c.Redirect(http.StatusSeeOther, "/blog/"+post.ID)
}
