package helpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// AuthHelper provides authentication utilities for tests
type AuthHelper struct {
	browser *BrowserHelper
}

// NewAuthHelper creates a new authentication helper
func NewAuthHelper(browser *BrowserHelper) *AuthHelper {
	return &AuthHelper{
		browser: browser,
	}
}

// SetupAuthenticatedPage boots a browser, logs in as the configured admin and
// returns the helper, skipping the test when credentials are not configured.
func SetupAuthenticatedPage(t *testing.T) (*BrowserHelper, *AuthHelper) {
	t.Helper()
	browser := NewBrowserHelper(t)
	if browser.Config.AdminEmail == "" || browser.Config.AdminPassword == "" {
		t.Skip("Admin credentials not configured")
	}
	if err := browser.Setup(); err != nil {
		t.Fatalf("browser setup failed: %v", err)
	}
	auth := NewAuthHelper(browser)
	if browser.Config.APIToken != "" {
		if err := auth.InjectAPIToken(); err != nil {
			browser.TearDown()
			t.Fatalf("API token injection failed: %v", err)
		}
	}
	if err := auth.LoginAsAdmin(); err != nil {
		browser.TearDown()
		t.Fatalf("admin login failed: %v", err)
	}
	return browser, auth
}

// InjectAPIToken attaches the configured API token as a bearer header on
// every request the browser context makes. The UI accepts token auth on the
// same endpoints the API client uses, so suites that exercise fetch-heavy
// pages get authenticated API calls even before the login form is submitted.
func (a *AuthHelper) InjectAPIToken() error {
	token := a.browser.Config.APIToken
	if token == "" {
		return fmt.Errorf("API token not configured")
	}
	if err := a.browser.Context.SetExtraHTTPHeaders(map[string]string{
		"Authorization": "Bearer " + token,
	}); err != nil {
		return fmt.Errorf("failed to set authorization header: %w", err)
	}
	return nil
}

// Login performs login with the given credentials
func (a *AuthHelper) Login(email, password string) error {
	if err := a.browser.NavigateTo("/login"); err != nil {
		return fmt.Errorf("failed to navigate to login: %w", err)
	}

	emailInput := a.browser.Page.Locator("input[name='email'], input#email")
	if err := emailInput.First().WaitFor(); err != nil {
		return fmt.Errorf("email input not found: %w", err)
	}
	if err := emailInput.First().Fill(email); err != nil {
		return fmt.Errorf("failed to fill email: %w", err)
	}

	passwordInput := a.browser.Page.Locator("input[name='password'], input#password")
	if err := passwordInput.First().Fill(password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}

	submitButton := a.browser.Page.Locator("button[type='submit']")
	if err := submitButton.Click(); err != nil {
		return fmt.Errorf("failed to click submit: %w", err)
	}

	if err := a.browser.WaitForIdle(); err != nil {
		return fmt.Errorf("failed waiting for login response: %w", err)
	}

	url := a.browser.Page.URL()
	if strings.HasPrefix(url, a.browser.Config.BaseURL+"/dashboard") {
		return nil
	}

	errorMsg := a.browser.Page.Locator("[data-testid='login-error'], #error-message")
	if count, _ := errorMsg.Count(); count > 0 {
		text, _ := errorMsg.First().TextContent()
		return fmt.Errorf("login failed: %s", strings.TrimSpace(text))
	}

	return nil
}

// LoginAsAdmin logs in with admin credentials from config
func (a *AuthHelper) LoginAsAdmin() error {
	if a.browser.Config.AdminEmail == "" || a.browser.Config.AdminPassword == "" {
		return fmt.Errorf("admin credentials not configured")
	}
	return a.Login(a.browser.Config.AdminEmail, a.browser.Config.AdminPassword)
}

// Logout performs logout
func (a *AuthHelper) Logout() error {
	logoutControl := a.browser.Page.Locator("[data-testid='logout'], a[href='/logout'], button:has-text('Log out')")
	if count, _ := logoutControl.Count(); count > 0 {
		if err := logoutControl.First().Click(); err == nil {
			if err := a.browser.Page.WaitForURL("**/login", playwright.PageWaitForURLOptions{Timeout: playwright.Float(5000)}); err == nil {
				return nil
			}
		}
		// Fall through to direct navigation if click or wait fails
	}

	if _, err := a.browser.Page.Goto(a.browser.Config.BaseURL + "/logout"); err != nil {
		return fmt.Errorf("failed to navigate to /logout: %w", err)
	}
	if err := a.browser.Page.WaitForURL("**/login", playwright.PageWaitForURLOptions{Timeout: playwright.Float(5000)}); err != nil {
		return fmt.Errorf("logout redirect failed: %w", err)
	}
	return nil
}

// IsLoggedIn checks if the user is currently logged in
func (a *AuthHelper) IsLoggedIn() bool {
	dashboard := a.browser.Page.Locator("[data-testid='dashboard'], [data-page='dashboard']")
	if count, _ := dashboard.Count(); count > 0 {
		return true
	}

	url := a.browser.Page.URL()
	if url == "" || strings.HasPrefix(url, "about:") || !strings.HasPrefix(url, a.browser.Config.BaseURL) {
		return false
	}
	return url != a.browser.Config.BaseURL+"/login" &&
		url != a.browser.Config.BaseURL+"/"
}
