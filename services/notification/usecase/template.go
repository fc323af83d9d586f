package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

const (
	templateStartTag = "{{"
	templateEndTag   = "}}"
)

// compileTemplate looks up the identity's template for the given type
// and renders it against the recipient's profile data plus extraData.
// Rendering is plain placeholder substitution: no conditionals, no
// code execution, unknown placeholders come out empty.
func (u *NotificationUC) compileTemplate(
	ctx context.Context,
	identity *models.User,
	templateType models.TemplateType,
	recipient *models.User,
	extraData map[string]string,
) (subject, body string, err error) {
	tmpl, err := u.repo.GetTemplateByOwnerAndType(ctx, identity.ID, templateType)
	if err != nil {
		return "", "", err
	}

	data := u.buildTemplateData(ctx, recipient, extraData)

	t, err := fasttemplate.NewTemplate(tmpl.Content, templateStartTag, templateEndTag)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", templateType, err)
	}

	rendered := t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if val, ok := data[tag]; ok {
			return w.Write([]byte(val))
		}
		// Unknown placeholders render empty
		return 0, nil
	})

	return tmpl.Subject, rendered, nil
}

// buildTemplateData assembles the render context. Caller-supplied
// extraData keys are merged last so they win over profile defaults.
func (u *NotificationUC) buildTemplateData(ctx context.Context, recipient *models.User, extraData map[string]string) map[string]string {
	companyName := recipient.CompanyName
	if recipient.Role != models.RoleCompany && recipient.CompanyID != nil {
		if company, err := u.repo.GetUserByID(ctx, *recipient.CompanyID); err == nil {
			companyName = company.CompanyName
		}
	}

	packageName := ""
	if recipient.PackageID != nil {
		name, err := u.repo.GetPackageName(ctx, *recipient.PackageID)
		if err != nil {
			logger.Warn("Failed to resolve subscription package for template",
				logger.String("user_id", recipient.ID.String()),
				logger.Err(err))
		} else {
			packageName = name
		}
	}

	fullName := recipient.FullName
	if fullName == "" {
		fullName = companyName
	}

	data := map[string]string{
		"id":          recipient.ID.String(),
		"fullName":    fullName,
		"email":       recipient.EmailAddress,
		"phoneNo":     recipient.PhoneNo,
		"city":        recipient.City,
		"companyName": companyName,
		"package":     packageName,
		"currentDate": time.Now().Format("1/2/2006"),
	}
	for k, v := range extraData {
		data[k] = v
	}
	return data
}
