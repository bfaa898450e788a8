package web

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pharmadepot/m/domain"
	"pharmadepot/m/internal/repository"
)

// Form parsing helpers. Malformed numeric or date input yields a 400; the
// caller reports and stops.

func formInt(form url.Values, key string) (int64, error) {
	return strconv.ParseInt(form.Get(key), 10, 64)
}

func formFloat(form url.Values, key string) (float64, error) {
	return strconv.ParseFloat(form.Get(key), 64)
}

func formDate(form url.Values, key string) (string, error) {
	value := form.Get(key)
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		return "", err
	}
	return value, nil
}

var dateTimeLayouts = []string{domain.DateTimeLayout, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func formDateTime(form url.Values, key string) (string, error) {
	value := form.Get(key)
	var lastErr error
	for _, layout := range dateTimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.Format(domain.DateTimeLayout), nil
		}
		lastErr = err
	}
	return "", lastErr
}

func formOptional(form url.Values, key string) *string {
	if value := form.Get(key); value != "" {
		return &value
	}
	return nil
}

func sortedIDs(ids map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusBadRequest)
}

// currentEmployee resolves the session's employee record. A dangling session
// is treated the same as no session.
func (h *Handler) currentEmployee(w http.ResponseWriter, r *http.Request) (*domain.Employee, bool) {
	employee, err := repository.EmployeeByID(h.db, employeeIDFromContext(r))
	if errors.Is(err, repository.ErrNotFound) {
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return nil, false
	}
	if err != nil {
		h.serverError(w, err)
		return nil, false
	}
	return employee, true
}

func (h *Handler) renderList(w http.ResponseWriter, title string, rows []map[string]any) {
	encoded, err := encodeJSON(rows)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "list.html", map[string]any{"Title": title, "ModelJSON": encoded})
}

func (h *Handler) detailID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.badRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

// Manufacturers

func (h *Handler) manufacturers(w http.ResponseWriter, r *http.Request) {
	rows, err := repository.ManufacturerFields(h.db, "id", "name", "phone_number")
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderList(w, "Manufacturers", rows)
}

func (h *Handler) manufacturer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.detailID(w, r)
	if !ok {
		return
	}
	m, err := repository.ManufacturerByID(h.db, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/warehouse/", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "detail.html", map[string]any{"Title": "Manufacturer", "Model": m})
}

func (h *Handler) manufacturerUpdate(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	manufacturerIDs, err := repository.ManufacturerIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	// Non-administrators are bounced to the login page, not shown an error.
	if !employee.IsAdministrator {
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return
	}

	submissionMessage := ""
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.badRequest(w, "bad form")
			return
		}
		id, err := formInt(r.PostForm, "manufacturer-id")
		if err != nil {
			h.badRequest(w, "invalid manufacturer id")
			return
		}
		m := domain.Manufacturer{
			ID:          id,
			Name:        r.PostFormValue("manufacturer-name"),
			PhoneNumber: r.PostFormValue("manufacturer-phone-number"),
			Address:     formOptional(r.PostForm, "manufacturer-address"),
		}

		tx, err := h.db.Beginx()
		if err != nil {
			h.serverError(w, err)
			return
		}
		if _, exists := manufacturerIDs[id]; !exists {
			err = repository.InsertManufacturer(tx, m)
			submissionMessage = "Manufacturer created."
		} else {
			err = repository.UpdateManufacturer(tx, m)
			submissionMessage = "Manufacturer updated."
		}
		if err != nil {
			_ = tx.Rollback()
			h.serverError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			h.serverError(w, err)
			return
		}
	}

	manufacturersAll, err := repository.Manufacturers(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	rows, err := repository.ManufacturerFields(h.db, "id", "name", "phone_number", "address")
	if err != nil {
		h.serverError(w, err)
		return
	}
	manufacturerIDs, err = repository.ManufacturerIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	encoded, err := encodeJSON(rows)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "update.html", map[string]any{
		"ModelName":         "manufacturer",
		"Models":            manufacturersAll,
		"ModelJSON":         encoded,
		"ModelIDs":          sortedIDs(manufacturerIDs),
		"SubmissionMessage": submissionMessage,
	})
}

// Medicines

func (h *Handler) medicines(w http.ResponseWriter, r *http.Request) {
	rows, err := repository.MedicineFields(h.db, "id", "name")
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderList(w, "Medicines", rows)
}

func (h *Handler) medicine(w http.ResponseWriter, r *http.Request) {
	id, ok := h.detailID(w, r)
	if !ok {
		return
	}
	m, err := repository.MedicineByID(h.db, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/warehouse/", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "detail.html", map[string]any{"Title": "Medicine", "Model": m})
}

func parseMedicineForm(form url.Values) (domain.Medicine, error) {
	id, err := formInt(form, "medicine-id")
	if err != nil {
		return domain.Medicine{}, err
	}
	manufacturerID, err := formInt(form, "medicine-manufacturer-id")
	if err != nil {
		return domain.Medicine{}, err
	}
	costPrice, err := formFloat(form, "medicine-cost-price")
	if err != nil {
		return domain.Medicine{}, err
	}
	salePrice, err := formFloat(form, "medicine-sale-price")
	if err != nil {
		return domain.Medicine{}, err
	}
	var potency *int64
	if raw := form.Get("medicine-potency"); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Medicine{}, err
		}
		potency = &value
	}
	quantityPerUnit, err := formInt(form, "medicine-quantity-per-unit")
	if err != nil {
		return domain.Medicine{}, err
	}
	manufacturingDate, err := formDate(form, "medicine-manufacturing-date")
	if err != nil {
		return domain.Medicine{}, err
	}
	purchaseDate, err := formDate(form, "medicine-purchase-date")
	if err != nil {
		return domain.Medicine{}, err
	}
	expiryDate, err := formDate(form, "medicine-expiry-date")
	if err != nil {
		return domain.Medicine{}, err
	}

	return domain.Medicine{
		ID:                id,
		Name:              form.Get("medicine-name"),
		ManufacturerID:    manufacturerID,
		CostPrice:         costPrice,
		SalePrice:         salePrice,
		Potency:           potency,
		QuantityPerUnit:   quantityPerUnit,
		ManufacturingDate: manufacturingDate,
		PurchaseDate:      purchaseDate,
		ExpiryDate:        expiryDate,
	}, nil
}

func (h *Handler) medicineUpdate(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	medicineIDs, err := repository.MedicineIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !employee.IsAdministrator {
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return
	}

	submissionMessage := ""
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.badRequest(w, "bad form")
			return
		}
		m, err := parseMedicineForm(r.PostForm)
		if err != nil {
			h.badRequest(w, "invalid medicine form")
			return
		}

		tx, err := h.db.Beginx()
		if err != nil {
			h.serverError(w, err)
			return
		}
		if _, exists := medicineIDs[m.ID]; !exists {
			err = repository.InsertMedicine(tx, m)
			submissionMessage = "Medicine created."
		} else {
			err = repository.UpdateMedicine(tx, m)
			submissionMessage = "Medicine updated."
		}
		if err != nil {
			_ = tx.Rollback()
			h.serverError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			h.serverError(w, err)
			return
		}
	}

	medicinesAll, err := repository.Medicines(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	rows, err := repository.MedicineFields(h.db,
		"id", "name", "manufacturer_id", "cost_price", "sale_price", "potency", "quantity_per_unit",
		"manufacturing_date", "purchase_date", "expiry_date",
	)
	if err != nil {
		h.serverError(w, err)
		return
	}
	medicineIDs, err = repository.MedicineIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	manufacturerIDs, err := repository.ManufacturerIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	encoded, err := encodeJSON(rows)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "update.html", map[string]any{
		"ModelName":         "medicine",
		"Models":            medicinesAll,
		"ModelJSON":         encoded,
		"ModelIDs":          sortedIDs(medicineIDs),
		"ManufacturerIDs":   sortedIDs(manufacturerIDs),
		"SubmissionMessage": submissionMessage,
	})
}

// Sales

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	rows, err := repository.SaleFields(h.db, "id", "date_time")
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderList(w, "Sales", rows)
}

func (h *Handler) sale(w http.ResponseWriter, r *http.Request) {
	id, ok := h.detailID(w, r)
	if !ok {
		return
	}
	s, err := repository.SaleByID(h.db, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/warehouse/", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "detail.html", map[string]any{"Title": "Sale", "Model": s})
}

func parseSaleForm(form url.Values) (domain.Sale, error) {
	id, err := formInt(form, "sale-id")
	if err != nil {
		return domain.Sale{}, err
	}
	dateTime, err := formDateTime(form, "sale-date-time")
	if err != nil {
		return domain.Sale{}, err
	}
	employeeID, err := formInt(form, "sale-employee-id")
	if err != nil {
		return domain.Sale{}, err
	}
	customerID, err := formInt(form, "sale-customer-id")
	if err != nil {
		return domain.Sale{}, err
	}
	amount, err := formFloat(form, "sale-amount")
	if err != nil {
		return domain.Sale{}, err
	}
	return domain.Sale{ID: id, DateTime: dateTime, EmployeeID: employeeID, CustomerID: customerID, Amount: amount}, nil
}

func (h *Handler) saleUpdate(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	saleIDs, err := repository.SaleIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !employee.IsAdministrator {
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return
	}

	submissionMessage := ""
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.badRequest(w, "bad form")
			return
		}
		s, err := parseSaleForm(r.PostForm)
		if err != nil {
			h.badRequest(w, "invalid sale form")
			return
		}

		tx, err := h.db.Beginx()
		if err != nil {
			h.serverError(w, err)
			return
		}
		if _, exists := saleIDs[s.ID]; !exists {
			err = repository.InsertSale(tx, s)
			submissionMessage = "Sale created."
		} else {
			err = repository.UpdateSale(tx, s)
			submissionMessage = "Sale updated."
		}
		if err != nil {
			_ = tx.Rollback()
			h.serverError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			h.serverError(w, err)
			return
		}
	}

	salesAll, err := repository.Sales(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	rows, err := repository.SaleFields(h.db, "id", "date_time", "employee_id", "customer_id", "amount")
	if err != nil {
		h.serverError(w, err)
		return
	}
	saleIDs, err = repository.SaleIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	employeeIDs, err := repository.EmployeeIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	customerIDs, err := repository.CustomerIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	encoded, err := encodeJSON(rows)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "update.html", map[string]any{
		"ModelName":         "sale",
		"Models":            salesAll,
		"ModelJSON":         encoded,
		"ModelIDs":          sortedIDs(saleIDs),
		"EmployeeIDs":       sortedIDs(employeeIDs),
		"CustomerIDs":       sortedIDs(customerIDs),
		"SubmissionMessage": submissionMessage,
	})
}

// Salts

func (h *Handler) salts(w http.ResponseWriter, r *http.Request) {
	rows, err := repository.SaltFields(h.db, "id", "name")
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderList(w, "Salts", rows)
}

func (h *Handler) salt(w http.ResponseWriter, r *http.Request) {
	id, ok := h.detailID(w, r)
	if !ok {
		return
	}
	s, err := repository.SaltByID(h.db, id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/warehouse/", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "detail.html", map[string]any{"Title": "Salt", "Model": s})
}

func (h *Handler) saltUpdate(w http.ResponseWriter, r *http.Request) {
	employee, ok := h.currentEmployee(w, r)
	if !ok {
		return
	}
	saltIDs, err := repository.SaltIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	if !employee.IsAdministrator {
		http.Redirect(w, r, "/factory/login", http.StatusFound)
		return
	}

	submissionMessage := ""
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			h.badRequest(w, "bad form")
			return
		}
		id, err := formInt(r.PostForm, "salt-id")
		if err != nil {
			h.badRequest(w, "invalid salt id")
			return
		}
		s := domain.Salt{ID: id, Name: r.PostFormValue("salt-name")}

		tx, err := h.db.Beginx()
		if err != nil {
			h.serverError(w, err)
			return
		}
		if _, exists := saltIDs[id]; !exists {
			err = repository.InsertSalt(tx, s)
			submissionMessage = "Salt created."
		} else {
			err = repository.UpdateSalt(tx, s)
			submissionMessage = "Salt updated."
		}
		if err != nil {
			_ = tx.Rollback()
			h.serverError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			h.serverError(w, err)
			return
		}
	}

	saltsAll, err := repository.Salts(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	rows, err := repository.SaltFields(h.db, "id", "name")
	if err != nil {
		h.serverError(w, err)
		return
	}
	saltIDs, err = repository.SaltIDs(h.db)
	if err != nil {
		h.serverError(w, err)
		return
	}
	encoded, err := encodeJSON(rows)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.render(w, "update.html", map[string]any{
		"ModelName":         "salt",
		"Models":            saltsAll,
		"ModelJSON":         encoded,
		"ModelIDs":          sortedIDs(saltIDs),
		"SubmissionMessage": submissionMessage,
	})
}
