package wordlist

// names are common English first names.
var names = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Christopher",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Margaret",
	"Mark", "Sandra", "Donald", "Ashley", "Steven", "Kimberly", "Paul", "Emily",
	"Andrew", "Donna", "Joshua", "Michelle", "Kenneth", "Carol", "Kevin",
	"Amanda", "Brian", "Dorothy", "George", "Melissa", "Timothy", "Deborah",
	"Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon", "Jeffrey",
	"Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy", "Nicholas",
	"Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
	"Benjamin", "Samantha", "Samuel", "Katherine", "Gregory", "Christine",
	"Alexander", "Debra", "Frank", "Rachel", "Patrick", "Carolyn", "Raymond",
	"Janet", "Jack", "Catherine", "Dennis", "Maria", "Jerry", "Heather",
	"Tyler", "Diane", "Aaron", "Ruth", "Jose", "Julie", "Adam", "Olivia",
	"Nathan", "Joyce", "Henry", "Virginia", "Douglas", "Victoria", "Zachary",
	"Kelly", "Peter", "Lauren", "Kyle", "Christina", "Ethan", "Joan", "Walter",
	"Evelyn", "Noah", "Judith", "Jeremy", "Megan", "Christian", "Andrea",
	"Keith", "Cheryl", "Roger", "Hannah", "Terry", "Jacqueline", "Gerald",
	"Martha", "Harold", "Gloria", "Sean", "Teresa", "Austin", "Ann", "Carl",
	"Sara", "Arthur", "Madison", "Lawrence", "Frances", "Dylan", "Kathryn",
	"Jesse", "Janice", "Jordan", "Jean", "Bryan", "Abigail", "Billy", "Alice",
	"Joe", "Julia", "Bruce", "Judy", "Gabriel", "Sophia", "Logan", "Grace",
	"Albert", "Denise", "Willie", "Amber", "Alan", "Doris", "Juan", "Marilyn",
	"Wayne", "Danielle", "Elijah", "Beverly", "Randy", "Isabella", "Roy",
	"Theresa", "Vincent", "Diana", "Ralph", "Natalie", "Eugene", "Brittany",
	"Russell", "Charlotte", "Bobby", "Marie", "Mason", "Kayla", "Philip",
	"Alexis", "Louis", "Lori",
}

// adjectives describe people and things.
var adjectives = []string{
	"able", "active", "adorable", "adventurous", "agreeable", "alert",
	"amazing", "ambitious", "ancient", "angry", "anxious", "arrogant",
	"ashamed", "attractive", "average", "awful", "bad", "beautiful", "better",
	"bewildered", "big", "bitter", "black", "bloody", "blue", "blushing",
	"bored", "brainy", "brave", "breakable", "bright", "busy", "calm",
	"careful", "cautious", "charming", "cheerful", "clean", "clear", "clever",
	"cloudy", "clumsy", "colorful", "combative", "comfortable", "concerned",
	"confused", "cooperative", "courageous", "crazy", "creepy", "crowded",
	"cruel", "curious", "cute", "dangerous", "dark", "dead", "defeated",
	"defiant", "delightful", "depressed", "determined", "different",
	"difficult", "disgusted", "distinct", "disturbed", "dizzy", "doubtful",
	"drab", "dull", "eager", "easy", "elated", "elegant", "embarrassed",
	"enchanting", "encouraging", "energetic", "enthusiastic", "envious", "evil",
	"excited", "expensive", "exuberant", "fair", "faithful", "famous", "fancy",
	"fantastic", "fierce", "filthy", "fine", "foolish", "fragile", "frail",
	"frantic", "friendly", "frightened", "funny", "gentle", "gifted",
	"glamorous", "gleaming", "glorious", "good", "gorgeous", "graceful",
	"grieving", "grotesque", "grumpy", "handsome", "happy", "healthy",
	"helpful", "helpless", "hilarious", "homeless", "homely", "horrible",
	"hungry", "hurt", "ill", "important", "impossible", "inexpensive",
	"innocent", "inquisitive", "itchy", "jealous", "jittery", "jolly", "joyous",
	"kind", "lazy", "light", "lively", "lonely", "long", "lovely", "lucky",
	"magnificent", "misty", "modern", "motionless", "muddy", "mushy",
	"mysterious", "nasty", "naughty", "nervous", "nice", "nutty", "obedient",
	"obnoxious", "odd", "open", "outrageous", "outstanding", "panicky",
	"perfect", "plain", "pleasant", "poised", "poor", "powerful", "precious",
	"prickly", "proud", "putrid", "puzzled", "quaint", "real", "relieved",
	"repulsive", "rich", "scary", "selfish", "shiny", "shy", "silly", "sleepy",
	"smiling", "smoggy", "sore", "sparkling", "splendid", "spotless", "stormy",
	"strange", "stupid", "successful", "super", "talented", "tame", "tender",
	"tense", "terrible", "thankful", "thoughtful", "thoughtless", "tired",
	"tough", "troubled", "ugliest", "ugly", "uninterested", "unsightly",
	"unusual", "upset", "uptight", "vast", "victorious", "vivacious",
	"wandering", "weary", "wicked", "wide", "wild", "witty", "worried",
	"worrisome", "wrong", "zany", "zealous",
}

// countries are the member states of the United Nations.
var countries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola",
	"Antigua and Barbuda", "Argentina", "Armenia", "Australia", "Austria",
	"Azerbaijan", "Bahamas", "Bahrain", "Bangladesh", "Barbados", "Belarus",
	"Belgium", "Belize", "Benin", "Bhutan", "Bolivia", "Bosnia and Herzegovina",
	"Botswana", "Brazil", "Brunei", "Bulgaria", "Burkina Faso", "Burundi",
	"Cabo Verde", "Cambodia", "Cameroon", "Canada", "Central African Republic",
	"Chad", "Chile", "China", "Colombia", "Comoros", "Congo", "Costa Rica",
	"Croatia", "Cuba", "Cyprus", "Czechia", "Democratic Republic of the Congo",
	"Denmark", "Djibouti", "Dominica", "Dominican Republic", "Ecuador", "Egypt",
	"El Salvador", "Equatorial Guinea", "Eritrea", "Estonia", "Eswatini",
	"Ethiopia", "Fiji", "Finland", "France", "Gabon", "Gambia", "Georgia",
	"Germany", "Ghana", "Greece", "Grenada", "Guatemala", "Guinea",
	"Guinea-Bissau", "Guyana", "Haiti", "Honduras", "Hungary", "Iceland",
	"India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy",
	"Ivory Coast", "Jamaica", "Japan", "Jordan", "Kazakhstan", "Kenya",
	"Kiribati", "Kuwait", "Kyrgyzstan", "Laos", "Latvia", "Lebanon", "Lesotho",
	"Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg",
	"Madagascar", "Malawi", "Malaysia", "Maldives", "Mali", "Malta",
	"Marshall Islands", "Mauritania", "Mauritius", "Mexico", "Micronesia",
	"Moldova", "Monaco", "Mongolia", "Montenegro", "Morocco", "Mozambique",
	"Myanmar", "Namibia", "Nauru", "Nepal", "Netherlands", "New Zealand",
	"Nicaragua", "Niger", "Nigeria", "North Korea", "North Macedonia", "Norway",
	"Oman", "Pakistan", "Palau", "Panama", "Papua New Guinea", "Paraguay",
	"Peru", "Philippines", "Poland", "Portugal", "Qatar", "Romania", "Russia",
	"Rwanda", "Saint Kitts and Nevis", "Saint Lucia",
	"Saint Vincent and the Grenadines", "Samoa", "San Marino",
	"Sao Tome and Principe", "Saudi Arabia", "Senegal", "Serbia", "Seychelles",
	"Sierra Leone", "Singapore", "Slovakia", "Slovenia", "Solomon Islands",
	"Somalia", "South Africa", "South Korea", "South Sudan", "Spain",
	"Sri Lanka", "Sudan", "Suriname", "Sweden", "Switzerland", "Syria",
	"Tajikistan", "Tanzania", "Thailand", "Timor-Leste", "Togo", "Tonga",
	"Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan", "Tuvalu",
	"Uganda", "Ukraine", "United Arab Emirates", "United Kingdom",
	"United States", "Uruguay", "Uzbekistan", "Vanuatu", "Venezuela", "Vietnam",
	"Yemen", "Zambia", "Zimbabwe",
}

// nouns are everyday objects, places and animals.
var nouns = []string{
	"account", "airport", "animal", "answer", "apple", "army", "art", "baby",
	"back", "ball", "bank", "bath", "beach", "bed", "bell", "bike", "bird",
	"boat", "body", "bone", "book", "bottle", "box", "boy", "brain", "bread",
	"bridge", "brother", "bus", "cake", "camera", "car", "card", "cat", "chair",
	"cheese", "child", "city", "class", "clock", "cloud", "coat", "coffee",
	"computer", "corner", "country", "cow", "cup", "day", "desk", "dinner",
	"doctor", "dog", "door", "dream", "dress", "drink", "ear", "earth", "egg",
	"engine", "eye", "face", "family", "farm", "father", "field", "fire",
	"fish", "flag", "floor", "flower", "food", "foot", "forest", "friend",
	"garden", "gate", "girl", "glass", "gold", "grass", "hair", "hand", "hat",
	"head", "heart", "hill", "horse", "hospital", "hotel", "house", "island",
	"jacket", "key", "king", "kitchen", "lake", "lamp", "leaf", "letter",
	"library", "light", "lion", "list", "machine", "map", "market", "milk",
	"moon", "morning", "mother", "mountain", "mouse", "music", "name", "night",
	"nose", "ocean", "office", "orange", "paper", "park", "pen", "pencil",
	"piano", "picture", "plane", "plant", "pocket", "queen", "rain", "river",
	"road", "rock", "room", "school", "sea", "shirt", "shoe", "shop", "sister",
	"sky", "snow", "song", "spoon", "star", "station", "stone", "street", "sun",
	"table", "teacher", "tea", "tiger", "town", "train", "tree", "truck",
	"umbrella", "village", "wall", "watch", "water", "window", "winter", "wolf",
	"world",
}

// tlds are top-level domains without the leading dot.
var tlds = []string{
	"com", "net", "org", "io", "dev", "app", "info", "biz", "co", "me", "tech",
	"xyz", "online", "site", "de", "uk", "fr", "nl", "se", "ch",
}
