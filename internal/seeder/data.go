package seeder

// Value pools for generated records.

var specialties = []string{
	"Family Medicine", "Internal Medicine", "Pediatrics", "Cardiology",
	"Dermatology", "Endocrinology", "Gastroenterology", "Neurology",
	"Obstetrics and Gynecology", "Oncology", "Ophthalmology", "Orthopedics",
	"Psychiatry", "Radiology", "Surgery", "Urology", "Emergency Medicine",
	"Anesthesiology", "Pathology", "Physical Medicine", "Rheumatology",
}

var licenseTypes = []string{
	"Medical License", "DEA", "Board Certification", "State Controlled Substance",
}

var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var roles = []string{
	"Primary Care Physician", "Specialist", "Consultant", "Department Head",
	"Medical Director", "Attending Physician", "Resident", "Fellow",
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen", "Charles",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Sandra",
	"Mark", "Margaret", "Donald", "Ashley", "Steven", "Kimberly", "Andrew",
	"Emily", "Paul", "Donna", "Joshua", "Michelle",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var cities = []string{
	"Springfield", "Franklin", "Clinton", "Greenville", "Bristol", "Fairview",
	"Salem", "Madison", "Georgetown", "Arlington", "Ashland", "Burlington",
	"Manchester", "Oxford", "Riverside", "Cleveland", "Dayton", "Lexington",
	"Milton", "Auburn",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
	"Hill", "Park", "Walnut", "Church", "High", "Center", "Union", "River",
}

var practiceSuffixes = []string{
	"Medical Center", "Clinic", "Healthcare", "Hospital", "Medical Group", "Physicians",
}
