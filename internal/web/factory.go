package web

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"pharmadepot/m/internal/repository"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	loginMessage := ""

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		emailAddress := r.PostFormValue("email-address")
		password := r.PostFormValue("password")

		employee, err := repository.EmployeeByEmailAddress(h.db, emailAddress)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			h.serverError(w, err)
			return
		}

		if err == nil && bcrypt.CompareHashAndPassword([]byte(employee.LoginPassword), []byte(password)) == nil {
			h.issueSessionCookie(w, employee.ID)
			http.Redirect(w, r, "/factory/dashboard", http.StatusFound)
			return
		}

		// Same message for unknown email and wrong password.
		loginMessage = "Invalid email or password."
	}

	h.render(w, "login.html", map[string]any{"LoginMessage": loginMessage})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/factory/login", http.StatusFound)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	employee, err := repository.EmployeeByID(h.db, employeeIDFromContext(r))
	if errors.Is(err, repository.ErrNotFound) {
		// Session references an employee that no longer exists.
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, err)
		return
	}

	h.render(w, "dashboard.html", map[string]any{"EmployeeName": employee.FullName()})
}
