package employee

import (
	"fmt"
	"strings"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/audit"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/auth"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateEmployeeRequest struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Role     models.EmployeeRole `json:"role"`
	Position string              `json:"position"`
	Phone    string              `json:"phone"`
	Salary   float64             `json:"salary"`
}

type UpdateEmployeeRequest struct {
	Name     *string              `json:"name"`
	Email    *string              `json:"email"`
	Password *string              `json:"password"`
	Role     *models.EmployeeRole `json:"role"`
	Position *string              `json:"position"`
	Phone    *string              `json:"phone"`
	Salary   *float64             `json:"salary"`
}

type EmployeeResponse struct {
	ID       uint                `json:"id"`
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Role     models.EmployeeRole `json:"role"`
	Position string              `json:"position"`
	Phone    string              `json:"phone"`
	Salary   float64             `json:"salary"`
}

func employeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Email:    e.Email,
		Role:     e.Role,
		Position: e.Position,
		Phone:    e.Phone,
		Salary:   e.Salary,
	}
}

// actorInfo resolves the authenticated actor for audit fields.
func actorInfo(c *fiber.Ctx) (uint, string, error) {
	empID, err := auth.EmployeeID(c)
	if err != nil {
		return 0, "", err
	}
	var emp models.Employee
	if err := database.DB.First(&emp, empID).Error; err != nil {
		return 0, "", fiber.NewError(fiber.StatusInternalServerError, "Employee not found")
	}
	return empID, emp.Name, nil
}

func validRole(r models.EmployeeRole) bool {
	switch r {
	case models.RoleAdmin, models.RoleChef, models.RoleWaiter, models.RoleInventoryManager:
		return true
	}
	return false
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.Employee
		if err := database.DB.Order("name ASC").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Employees could not be listed")
		}

		resp := make([]EmployeeResponse, 0, len(employees))
		for _, e := range employees {
			resp = append(resp, employeeResponse(e))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// POST /api/employees (admin)
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		if body.Name == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and email are required")
		}
		if len(body.Password) < 6 {
			return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
		}
		if !validRole(body.Role) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown role")
		}

		var count int64
		database.DB.Model(&models.Employee{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "An employee with this email already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Password could not be hashed")
		}

		employee := models.Employee{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         body.Role,
			Position:     body.Position,
			Phone:        body.Phone,
			Salary:       body.Salary,
		}
		if err := database.DB.Create(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Employee could not be created")
		}

		if actorID, actorName, err := actorInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   actorID,
				EmployeeName: actorName,
				EntityType:   "employee",
				EntityID:     employee.ID,
				Action:       models.AuditActionCreate,
				Description:  fmt.Sprintf("Employee created: %s", employee.Name),
				After:        employeeResponse(employee),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": employeeResponse(employee)})
	}
}

// PUT /api/employees/:id (admin)
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var employee models.Employee
		if err := database.DB.First(&employee, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		before := employeeResponse(employee)

		if body.Name != nil {
			employee.Name = *body.Name
		}
		if body.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*body.Email))
			var count int64
			database.DB.Model(&models.Employee{}).
				Where("email = ? AND id <> ?", email, employee.ID).Count(&count)
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "An employee with this email already exists")
			}
			employee.Email = email
		}
		if body.Password != nil {
			if len(*body.Password) < 6 {
				return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 6 characters")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Password could not be hashed")
			}
			employee.PasswordHash = string(hash)
		}
		if body.Role != nil {
			if !validRole(*body.Role) {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown role")
			}
			employee.Role = *body.Role
		}
		if body.Position != nil {
			employee.Position = *body.Position
		}
		if body.Phone != nil {
			employee.Phone = *body.Phone
		}
		if body.Salary != nil {
			employee.Salary = *body.Salary
		}

		if err := database.DB.Save(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Employee could not be updated")
		}

		if actorID, actorName, err := actorInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   actorID,
				EmployeeName: actorName,
				EntityType:   "employee",
				EntityID:     employee.ID,
				Action:       models.AuditActionUpdate,
				Description:  fmt.Sprintf("Employee updated: %s", employee.Name),
				Before:       before,
				After:        employeeResponse(employee),
			})
		}
		return c.JSON(fiber.Map{"success": true, "data": employeeResponse(employee)})
	}
}

// DELETE /api/employees/:id (admin). An admin cannot delete their own account.
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var employee models.Employee
		if err := database.DB.First(&employee, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		actorID, _ := auth.EmployeeID(c)
		if actorID == employee.ID {
			return fiber.NewError(fiber.StatusBadRequest, "You cannot delete your own account")
		}

		if err := database.DB.Delete(&employee).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Employee could not be deleted")
		}

		if _, actorName, err := actorInfo(c); err == nil {
			audit.WriteLog(audit.LogOptions{
				EmployeeID:   actorID,
				EmployeeName: actorName,
				EntityType:   "employee",
				EntityID:     employee.ID,
				Action:       models.AuditActionDelete,
				Description:  fmt.Sprintf("Employee deleted: %s", employee.Name),
				Before:       employeeResponse(employee),
			})
		}
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"deleted": true}})
	}
}
