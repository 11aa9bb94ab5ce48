package service

import "github.com/shenikar/road_obstacles/internal/models"

// defaultContacts - справочник, который записывается при первом чтении контактов.
// Значения совпадают с уже установленными копиями приложения, менять нельзя.
var defaultContacts = [...]models.Contact{
	{ID: "1", Name: "Service Technique", Phone: "01 23 45 67 89", Role: "Démontage feux tricolores"},
	{ID: "2", Name: "Police Municipale", Phone: "01 23 45 67 90", Role: "Coupure de routes"},
	{ID: "3", Name: "SNCF", Phone: "01 23 45 67 91", Role: "Traversée voies ferrées"},
	{ID: "4", Name: "Préfecture", Phone: "01 23 45 67 92", Role: "Autorisations spéciales"},
	{ID: "5", Name: "Pompiers", Phone: "18", Role: "Urgences"},
	{ID: "6", Name: "Gendarmerie", Phone: "17", Role: "Sécurité routière"},
	{ID: "7", Name: "SAMU", Phone: "15", Role: "Urgences médicales"},
	{ID: "8", Name: "Enedis", Phone: "09 69 32 15 15", Role: "Démontage lignes électriques"},
	{ID: "9", Name: "Orange", Phone: "09 69 36 39 00", Role: "Démontage lignes télécom"},
	{ID: "10", Name: "GRDF", Phone: "09 69 36 35 00", Role: "Démontage conduites gaz"},
	{ID: "11", Name: "Véolia", Phone: "09 69 39 30 00", Role: "Démontage conduites eau"},
	{ID: "12", Name: "DDEA", Phone: "01 23 45 67 93", Role: "Direction Départementale"},
	{ID: "13", Name: "DREAL", Phone: "01 23 45 67 94", Role: "Direction Régionale"},
	{ID: "14", Name: "Mairie", Phone: "01 23 45 67 95", Role: "Autorisations municipales"},
	{ID: "15", Name: "Concessionnaire Autoroute", Phone: "01 23 45 67 96", Role: "Traversée autoroute"},
}

// DefaultContacts возвращает новую копию набора контактов по умолчанию
func DefaultContacts() []*models.Contact {
	contacts := make([]*models.Contact, len(defaultContacts))
	for i := range defaultContacts {
		c := defaultContacts[i]
		contacts[i] = &c
	}
	return contacts
}
