package filter

import "shopfloor/internal/storage"

// Извлечение полей для фильтров по каждой сущности.

func WorkOrderFields(wo storage.WorkOrder) Fields {
	return Fields{
		Status: string(wo.Status),
		Site:   wo.SiteID,
		Date:   wo.DueDate,
		Text:   []string{wo.ID, wo.Number, wo.Product, wo.Customer},
	}
}

func EmployeeFields(e storage.Employee) Fields {
	status := "inactive"
	if e.IsActive {
		status = "active"
	}
	return Fields{Status: status, Site: e.SiteID, Text: []string{e.Name, e.Email, e.Role}}
}

func TeamFields(t storage.Team) Fields {
	return Fields{Site: t.SiteID, Text: []string{t.Name, t.Lead}}
}

func SiteFields(s storage.Site) Fields {
	return Fields{Site: s.ID, Text: []string{s.Code, s.Name, s.City}}
}

func BOMFields(b storage.BOM) Fields {
	text := []string{b.ID, b.Product, b.Revision}
	for _, it := range b.Items {
		text = append(text, it.PartNumber, it.Description)
	}
	return Fields{Text: text}
}

func RoutingFields(r storage.Routing) Fields {
	text := []string{r.ID, r.Product, r.Name}
	for _, s := range r.Steps {
		text = append(text, s.Name, s.WorkCenter)
	}
	return Fields{Text: text}
}

func PickListFields(p storage.PickList) Fields {
	text := []string{p.ID, p.WorkOrderID}
	for _, it := range p.Items {
		text = append(text, it.PartNumber, it.Location)
	}
	return Fields{Status: p.Status, Site: p.SiteID, Date: p.CreatedAt, Text: text}
}
