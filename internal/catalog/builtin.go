package catalog

import (
	"fmt"
	"time"
)

// TimeAnswer formats the spoken answer to the time question.
func TimeAnswer(now func() time.Time) func() string {
	return func() string {
		return fmt.Sprintf("The current time is %s", now().Format(time.TimeOnly))
	}
}

// DefaultEntries returns the built-in response table.
func DefaultEntries(now func() time.Time) []Entry {
	s := func(q, a string) Entry {
		return Entry{Question: q, Response: Static(a)}
	}

	return []Entry{
		s(ActivationKey, "I'm listening. How can I help you?"),
		s(GoodbyeKey, "Goodbye! Have a great day."),
		s(NotFoundKey, "I'm not sure I understood that. Could you please repeat?"),
		s("what is a collaborative robot", "A collaborative robot is designed to work safely and directly with humans."),
		s("how is a collaborative robot different from a traditional robot", "Collaborative robots are safer and more interactive than traditional robots."),
		s("what is ai", "AI stands for Artificial Intelligence, the simulation of human intelligence by machines."),
		s("what is python", "Python is a popular and beginner-friendly programming language."),
		s("tell me a joke", "Why did the robot go on vacation? It needed to recharge!"),
		s("what is robotics", "Robotics is the field focused on designing and building robots."),
		s("who made you", "I was created by a developer using Go and Vosk."),
		s("what is your name", "I'm your friendly voice assistant. You can call me Echo!"),
		s("how are you", "I'm functioning at optimal performance. How about you?"),
		{Question: "what is the time", Response: Computed(TimeAnswer(now))},
		s("who is your favorite superhero", "I admire Iron Man. A genius inventor with a heart of gold."),
		s("what's the weather", "I'm not connected to the internet, but I hope it's sunny where you are!"),
		s("what's your favorite food", "I don't eat food, but I heard cookies are amazing!"),
		s("do you sleep", "I rest in standby mode, ready to assist you anytime!"),
		s("sing a song", "La la la! I might not win any awards, but I try my best!"),
		s("dance", "I would if I had legs. Imagine me doing the robot dance!"),
		s("what is machine learning", "Machine learning is a subset of AI where systems learn patterns from data to make decisions without being explicitly programmed."),
		s("what is deep learning", "Deep learning is a part of machine learning that uses neural networks with many layers to process complex data like images and audio."),
		s("what is a neural network", "A neural network is a series of algorithms that mimics the human brain to recognize patterns and solve problems."),
		s("what is natural language processing", "Natural Language Processing, or NLP, allows computers to understand, interpret, and respond to human language."),
		s("what is reinforcement learning", "Reinforcement learning is a type of machine learning where an agent learns by performing actions and receiving rewards or penalties."),
		s("what is supervised learning", "Supervised learning is a machine learning method where the model is trained on labeled data."),
		s("what is unsupervised learning", "Unsupervised learning involves finding hidden patterns in data without labeled outputs."),
		s("what is autonomous robot", "An autonomous robot can perform tasks and make decisions without human intervention."),
		s("what is a humanoid robot", "A humanoid robot is a robot that resembles and mimics human body and behavior."),
		s("what is a drone", "A drone is an unmanned aerial vehicle used in surveillance, delivery, photography, and more."),
		s("what is computer intelligence", "Computer intelligence refers to the ability of machines to simulate human cognitive processes like learning and reasoning."),
		s("what is a robot arm", "A robotic arm is a programmable mechanical device used for picking, placing, or assembling tasks."),
		s("what is swarm robotics", "Swarm robotics involves many robots working together as a group, inspired by nature like bees or ants."),
		s("what is path planning", "Path planning is the process of determining a route for a robot to reach a target without collisions."),
		s("what is slam", "SLAM stands for Simultaneous Localization and Mapping. It helps robots map an unknown environment while keeping track of their location."),
		s("what is ros", "ROS stands for Robot Operating System. It's a framework used to write robot software with standard tools and libraries."),
		s("what is an industrial robot", "An industrial robot is an automated machine used in factories for manufacturing, welding, assembling, or material handling."),
		s("what is ai ethics", "AI ethics deals with the moral implications and responsible use of artificial intelligence."),
	}
}

// DefaultKeywords returns the built-in keyword table.
// Order matters: the first trigger contained in the input wins.
func DefaultKeywords() []Keyword {
	return []Keyword{
		{"collaborative robot", "what is a collaborative robot"},
		{"difference", "how is a collaborative robot different from a traditional robot"},
		{"ai", "what is ai"},
		{"python", "what is python"},
		{"joke", "tell me a joke"},
		{"robotics", "what is robotics"},
		{"who made you", "who made you"},
		{"bye", GoodbyeKey},
		{"exit", GoodbyeKey},
		{"quit", GoodbyeKey},
		{"name", "what is your name"},
		{"how are you", "how are you"},
		{"time", "what is the time"},
		{"superhero", "who is your favorite superhero"},
		{"weather", "what's the weather"},
		{"food", "what's your favorite food"},
		{"sleep", "do you sleep"},
		{"sing", "sing a song"},
		{"dance", "dance"},
		{"machine learning", "what is machine learning"},
		{"deep learning", "what is deep learning"},
		{"neural network", "what is a neural network"},
		{"nlp", "what is natural language processing"},
		{"reinforcement", "what is reinforcement learning"},
		{"supervised", "what is supervised learning"},
		{"unsupervised", "what is unsupervised learning"},
		{"autonomous", "what is autonomous robot"},
		{"humanoid", "what is a humanoid robot"},
		{"drone", "what is a drone"},
		{"intelligence", "what is computer intelligence"},
		{"robot arm", "what is a robot arm"},
		{"swarm", "what is swarm robotics"},
		{"path planning", "what is path planning"},
		{"slam", "what is slam"},
		{"ros", "what is ros"},
		{"industrial", "what is an industrial robot"},
		{"ethics", "what is ai ethics"},
	}
}

// Default builds the built-in catalog.
func Default(now func() time.Time) *Catalog {
	return MustNew(DefaultEntries(now), DefaultKeywords())
}
