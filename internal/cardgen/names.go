package cardgen

var firstNames = [...]string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "James", "Emma",
	"Robert", "Lisa", "Daniel", "Olivia", "Matthew", "Sophia", "Andrew",
	"Isabella", "Joseph", "Mia", "William", "Charlotte", "Alexander",
	"Amelia", "Christopher", "Harper", "Joshua", "Evelyn", "Ryan", "Abigail",
	"Nicholas", "Ella", "Anthony", "Avery", "Samuel", "Scarlett", "Benjamin",
	"Grace", "Jonathan", "Chloe", "Henry", "Victoria", "Justin", "Riley",
	"Aaron", "Aria", "Kevin", "Lily", "Brian", "Zoey", "Thomas", "Hannah",
	"Steven", "Nora", "Mark", "Addison", "Paul", "Ellie", "Jason", "Layla",
	"Timothy", "Brooklyn", "Charles", "Penelope", "Jeffrey", "Lillian",
	"Patrick", "Audrey", "Scott", "Claire", "Brandon", "Lucy", "Adam",
	"Paisley", "Zachary", "Everly", "Sean", "Anna", "Kyle", "Caroline",
	"Ethan", "Nova", "Jeremy", "Genesis", "Christian", "Emilia", "Nathan",
	"Samantha", "Jordan", "Maya",
}

var lastNames = [...]string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris",
	"Morales", "Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan",
	"Cooper", "Peterson", "Bailey", "Reed", "Kelly", "Howard", "Ramos",
	"Kim", "Cox", "Ward", "Richardson", "Watson", "Brooks", "Chavez",
	"Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz", "Hughes",
	"Price", "Alvarez", "Castillo", "Sanders",
}
